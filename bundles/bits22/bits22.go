// Package bits22 provides the statically embedded BITS 2.2 (Book Interchange Tag Suite) schema files.
package bits22

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the BITS 2.2 (Book Interchange Tag Suite) schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "BITS",
	Version: "2.2",
	License: "Public Domain",
}, schemaFS, "schemas")
