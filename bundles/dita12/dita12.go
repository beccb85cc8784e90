// Package dita12 provides the statically embedded OASIS DITA 1.2 schema files.
package dita12

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the OASIS DITA 1.2 schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "DITA",
	Version: "1.2",
	License: "OASIS-IPR",
}, schemaFS, "schemas")
