package schemas

import (
	"encoding/hex"
	"path"
	"strings"

	"github.com/zeebo/blake3"
)

// File is a single schema file with its relative path and content.
// It is immutable after embedding; callers must not modify the
// returned content slice.
type File struct {
	path    string
	content []byte
}

// Path returns the file's slash-separated path, relative to the
// bundle root (e.g. "xsd1.2/base/xsd/basemap.xsd"). Paths are unique
// within a bundle and serve as the lookup key.
func (f *File) Path() string {
	return f.path
}

// Content returns the raw file content.
func (f *File) Content() []byte {
	return f.content
}

// ContentString returns the file content as a string.
func (f *File) ContentString() string {
	return string(f.content)
}

// Size returns the content length in bytes.
func (f *File) Size() int64 {
	return int64(len(f.content))
}

// Name returns the file name without any directory components.
func (f *File) Name() string {
	return path.Base(f.path)
}

// Extension returns the final dot-delimited suffix of the path
// without the dot (e.g. "xsd", "dtd"), or "" when there is none.
func (f *File) Extension() string {
	return strings.TrimPrefix(path.Ext(f.path), ".")
}

// Checksum returns the hex-encoded BLAKE3 digest of the file content.
func (f *File) Checksum() string {
	sum := blake3.Sum256(f.content)

	return hex.EncodeToString(sum[:])
}

// Dir is a directory in a bundle's embedded tree. Children are held
// in the deterministic order the embedded filesystem reports them
// (lexical by name) and are owned exclusively by their parent; there
// are no parent pointers and no cross-links.
type Dir struct {
	path  string
	files []*File
	dirs  []*Dir
}

// Path returns the directory's slash-separated path relative to the
// bundle root; the root directory's path is "".
func (d *Dir) Path() string {
	return d.path
}

// Files returns the directory's immediate child files.
func (d *Dir) Files() []*File {
	return d.files
}

// Dirs returns the directory's immediate subdirectories.
func (d *Dir) Dirs() []*Dir {
	return d.dirs
}
