// Package teip5 provides the statically embedded TEI P5 (Text Encoding Initiative) schema files.
package teip5

import (
	"embed"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the TEI P5 (Text Encoding Initiative) schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "TEI",
	Version: "P5",
	License: "BSD-2-Clause",
}, schemaFS, "schemas")
