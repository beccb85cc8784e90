// Package nisosts provides the statically embedded NISO Standards Tag Suite 1.0 schema files.
package nisosts

import (
	"embed"
	"iter"
	"strings"

	schemas "github.com/ParapluOU/schemas-go"
)

//go:embed schemas
var schemaFS embed.FS

// Bundle is the NISO Standards Tag Suite 1.0 schema bundle, embedded at build time and constant
// for the lifetime of the process.
var Bundle = schemas.MustNew(schemas.Descriptor{
	Name:    "NISO STS",
	Version: "1.0",
	License: "NISO",
}, schemaFS, "schemas")

// InterchangeFiles returns the interchange tag set schemas only.
func InterchangeFiles() iter.Seq[*schemas.File] {
	return Bundle.FindFiles(func(f *schemas.File) bool {
		return strings.Contains(f.Path(), "interchange")
	})
}

// ExtendedFiles returns the extended tag set schemas only.
func ExtendedFiles() iter.Seq[*schemas.File] {
	return Bundle.FindFiles(func(f *schemas.File) bool {
		return strings.Contains(f.Path(), "extended")
	})
}

// MathMLFiles returns the MathML schemas.
func MathMLFiles() iter.Seq[*schemas.File] {
	return Bundle.FindFiles(func(f *schemas.File) bool {
		return strings.Contains(f.Path(), "mathml")
	})
}
