// Package bundles aggregates every schema family shipped with this
// module behind one registry, so callers can enumerate or look up
// bundles without importing each family package individually.
package bundles

import (
	schemas "github.com/ParapluOU/schemas-go"
	"github.com/ParapluOU/schemas-go/bundles/akomantoso30"
	"github.com/ParapluOU/schemas-go/bundles/bits22"
	"github.com/ParapluOU/schemas-go/bundles/dita12"
	"github.com/ParapluOU/schemas-go/bundles/dita13"
	"github.com/ParapluOU/schemas-go/bundles/ditalce"
	"github.com/ParapluOU/schemas-go/bundles/docbook51"
	"github.com/ParapluOU/schemas-go/bundles/jats14"
	"github.com/ParapluOU/schemas-go/bundles/nisosts"
	"github.com/ParapluOU/schemas-go/bundles/splr2b"
	"github.com/ParapluOU/schemas-go/bundles/teip5"
)

// Entry pairs a stable identifier with a registered schema bundle.
type Entry struct {
	ID     string
	Bundle *schemas.Bundle
}

//nolint:gochecknoglobals
var registry = []Entry{
	{"dita", dita12.Bundle},
	{"dita13", dita13.Bundle},
	{"dita-lce", ditalce.Bundle},
	{"niso-sts", nisosts.Bundle},
	{"jats", jats14.Bundle},
	{"bits", bits22.Bundle},
	{"docbook", docbook51.Bundle},
	{"akoma-ntoso", akomantoso30.Bundle},
	{"tei", teip5.Bundle},
	{"spl", splr2b.Bundle},
}

// All returns every registered bundle in a fixed, deterministic order.
func All() []Entry {
	entries := make([]Entry, len(registry))
	copy(entries, registry)

	return entries
}

// Get returns the bundle registered under the given identifier.
func Get(id string) (*schemas.Bundle, bool) {
	for _, entry := range registry {
		if entry.ID == id {
			return entry.Bundle, true
		}
	}

	return nil, false
}

// IDs returns the identifiers of all registered bundles, in [All] order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for _, entry := range registry {
		ids = append(ids, entry.ID)
	}

	return ids
}
