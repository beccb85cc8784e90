package schemas

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// VerifyDirectory checks a previous extraction beneath base by
// re-reading every file and comparing its BLAKE3 digest against the
// embedded content. It returns a [*VerifyError] on the first mismatch,
// or a wrapped read error when a file cannot be read back.
func (b *Bundle) VerifyDirectory(base string) error {
	for f := range b.Files() {
		target := filepath.Join(base, filepath.FromSlash(f.Path()))

		data, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("failed to read back %s: %w", target, err)
		}

		sum := blake3.Sum256(data)
		got := hex.EncodeToString(sum[:])

		if want := f.Checksum(); got != want {
			return &VerifyError{Path: f.Path(), Want: want, Got: got}
		}
	}

	return nil
}
