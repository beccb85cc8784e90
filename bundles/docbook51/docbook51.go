// Package docbook51 provides the statically embedded DocBook 5.1 RelaxNG schema files.
package docbook51

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the DocBook 5.1 RelaxNG schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "DocBook",
	Version: "5.1",
	License: "BSD-2-Clause",
}, schemaFS, "schemas")
