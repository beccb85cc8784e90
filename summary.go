package schemas

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Summary aggregates a bundle's descriptor fields with its file count
// and total byte size. It is a derived value with no lifecycle of its
// own, recomputed by [Bundle.Summary] on each request.
type Summary struct {
	Name      string
	Version   string
	License   string
	FileCount int
	TotalSize int64
}

// String renders the summary as a single human-readable line.
func (s Summary) String() string {
	return fmt.Sprintf("%s v%s (%s) - %d files, %s",
		s.Name, s.Version, s.License, s.FileCount, humanize.Bytes(uint64(s.TotalSize)))
}
