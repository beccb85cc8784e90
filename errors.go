package schemas

import (
	"errors"
	"fmt"
)

// ErrChecksumMismatch is an error that occurs when an extracted file's
// on-disk content no longer matches the embedded content; this usually
// means post-extraction modification or underlying hardware issues.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// FileNotFoundError is an error that occurs when a schema file is
// looked up by a path that does not exist within the bundle.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("schema file not found: %s", e.Path)
}

// CreateDirError is an error that occurs when an ancestor directory
// could not be created during extraction. It carries the directory
// path attempted and the underlying cause.
type CreateDirError struct {
	Path string
	Err  error
}

func (e *CreateDirError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Err)
}

func (e *CreateDirError) Unwrap() error {
	return e.Err
}

// WriteError is an error that occurs when a target file's bytes could
// not be written during extraction. It carries the file path attempted
// and the underlying cause.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// VerifyError is an error that occurs when verification of an
// extracted file fails. It carries the bundle-relative path and both
// hex-encoded BLAKE3 digests, and unwraps to [ErrChecksumMismatch].
type VerifyError struct {
	Path string
	Want string
	Got  string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: %s (embedded) != %s (on disk)", e.Path, e.Want, e.Got)
}

func (e *VerifyError) Unwrap() error {
	return ErrChecksumMismatch
}
