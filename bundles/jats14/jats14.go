// Package jats14 provides the statically embedded JATS 1.4 (Journal Article Tag Suite) schema files.
package jats14

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the JATS 1.4 (Journal Article Tag Suite) schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "JATS",
	Version: "1.4",
	License: "Public Domain",
}, schemaFS, "schemas")
