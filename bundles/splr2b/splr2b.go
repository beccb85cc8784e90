// Package splr2b provides the statically embedded FDA SPL R2b (pharmaceutical package insert) schema files.
package splr2b

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the FDA SPL R2b (pharmaceutical package insert) schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "SPL",
	Version: "R2b",
	License: "BSD-3-Clause",
}, schemaFS, "schemas")
