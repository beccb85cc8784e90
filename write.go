package schemas

import (
	"os"
	"path/filepath"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// WriteProgress reports the state of an ongoing extraction after a
// file has been written.
type WriteProgress struct {
	Written int
	Total   int
	Path    string
	Bytes   int64
}

// WriteToDirectory writes every file of the bundle beneath base,
// recreating the embedded directory structure and overwriting any
// existing files. It returns the number of files written.
//
// Extraction fails fast: the first [*CreateDirError] or [*WriteError]
// is returned immediately and files written before the failing entry
// remain on disk. Re-invoking after resolving the underlying I/O
// condition is safe, as overwriting is idempotent.
func (b *Bundle) WriteToDirectory(base string) (int, error) {
	return b.WriteToDirectoryProgress(base, nil)
}

// WriteToDirectoryProgress is [Bundle.WriteToDirectory] with an
// optional callback invoked after each written file, for callers that
// surface extraction progress. A nil callback is allowed.
func (b *Bundle) WriteToDirectoryProgress(base string, progress func(WriteProgress)) (int, error) {
	total := b.FileCount()
	written := 0

	for f := range b.Files() {
		target := filepath.Join(base, filepath.FromSlash(f.Path()))

		parent := filepath.Dir(target)
		if err := os.MkdirAll(parent, dirPerms); err != nil {
			return written, &CreateDirError{Path: parent, Err: err}
		}

		if err := os.WriteFile(target, f.Content(), filePerms); err != nil {
			return written, &WriteError{Path: target, Err: err}
		}

		written++

		if progress != nil {
			progress(WriteProgress{
				Written: written,
				Total:   total,
				Path:    f.Path(),
				Bytes:   f.Size(),
			})
		}
	}

	return written, nil
}
