// Package akomantoso30 provides the statically embedded Akoma Ntoso 3.0 legal document schema files.
package akomantoso30

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the Akoma Ntoso 3.0 legal document schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "Akoma Ntoso",
	Version: "3.0",
	License: "CC-BY-4.0",
}, schemaFS, "schemas")
