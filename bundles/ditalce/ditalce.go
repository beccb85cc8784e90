// Package ditalce provides the statically embedded DITA Learning Content Education 3.0 schema files.
package ditalce

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the DITA Learning Content Education 3.0 schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "DITA LCE",
	Version: "3.0",
	License: "Apache-2.0",
}, schemaFS, "schemas")
