// Package dita13 provides the statically embedded OASIS DITA 1.3 schema files.
package dita13

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the OASIS DITA 1.3 schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "DITA",
	Version: "1.3",
	License: "Apache-2.0",
}, schemaFS, "schemas")
