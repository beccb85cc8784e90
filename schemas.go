// Package schemas provides the principal schematics for all embedded
// XML schema bundles. It defines the immutable directory tree built
// from a compile-time embedded filesystem and the uniform query and
// extraction operations every concrete schema family supports. The
// package serves as a foundational layer for the per-family bundle
// packages underneath bundles/.
package schemas

import (
	"fmt"
	"io/fs"
	"path"
)

// Descriptor holds the static per-family metadata of a schema bundle.
// Exactly one instance exists per concrete bundle, constant for the
// lifetime of the program.
type Descriptor struct {
	// Name is the human-readable name of the schema (e.g. "DITA", "NISO STS").
	Name string

	// Version is the version string of the schema (e.g. "1.2", "P5").
	Version string

	// License is the license identifier (e.g. "OASIS-IPR", "Apache-2.0").
	License string
}

// Bundle is an immutable collection of schema files embedded at build
// time. A Bundle is a [Descriptor] plus the root [Dir] of its embedded
// tree; all operations are pure functions of that tree and are safe
// for concurrent use.
type Bundle struct {
	desc  Descriptor
	root  *Dir
	index map[string]*File
}

// New builds a [Bundle] from the subtree of fsys rooted at dir. The
// whole subtree is read into memory once; the resulting tree is never
// mutated afterwards. Pass "." for dir to use fsys as-is.
func New(desc Descriptor, fsys fs.FS, dir string) (*Bundle, error) {
	if dir != "." && dir != "" {
		sub, err := fs.Sub(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to root filesystem at %s: %w", dir, err)
		}
		fsys = sub
	}

	root, err := buildDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		desc:  desc,
		root:  root,
		index: make(map[string]*File),
	}

	for f := range b.Files() {
		b.index[f.Path()] = f
	}

	return b, nil
}

// MustNew is like [New] but panics on failure. It is intended for
// package-level bundle variables backed by an embed.FS, where a
// failure can only mean a broken build.
func MustNew(desc Descriptor, fsys fs.FS, dir string) *Bundle {
	b, err := New(desc, fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("schemas: failed to build bundle %s %s: %v", desc.Name, desc.Version, err))
	}

	return b
}

func buildDir(fsys fs.FS, name string) (*Dir, error) {
	entries, err := fs.ReadDir(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", name, err)
	}

	dirPath := name
	if dirPath == "." {
		dirPath = ""
	}

	d := &Dir{path: dirPath}

	for _, entry := range entries {
		entryPath := entry.Name()
		if dirPath != "" {
			entryPath = path.Join(dirPath, entry.Name())
		}

		if entry.IsDir() {
			sub, err := buildDir(fsys, entryPath)
			if err != nil {
				return nil, err
			}
			d.dirs = append(d.dirs, sub)

			continue
		}

		content, err := fs.ReadFile(fsys, entryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", entryPath, err)
		}

		d.files = append(d.files, &File{path: entryPath, content: content})
	}

	return d, nil
}

// Descriptor returns the bundle's static metadata.
func (b *Bundle) Descriptor() Descriptor {
	return b.desc
}

// Root returns the root [Dir] of the bundle's embedded tree.
func (b *Bundle) Root() *Dir {
	return b.root
}

// GetFile looks up one [File] by its exact relative path from the
// bundle root. Absence is reported through the second return value,
// not through an error.
func (b *Bundle) GetFile(path string) (*File, bool) {
	f, ok := b.index[path]

	return f, ok
}

// ReadFile returns the content of the file at path. Unlike [Bundle.GetFile]
// it signals absence with a [*FileNotFoundError], for callers that
// prefer an error-typed result.
func (b *Bundle) ReadFile(path string) ([]byte, error) {
	f, ok := b.index[path]
	if !ok {
		return nil, &FileNotFoundError{Path: path}
	}

	return f.Content(), nil
}

// FileCount returns the number of files reachable from the bundle root.
func (b *Bundle) FileCount() int {
	count := 0
	for range b.Files() {
		count++
	}

	return count
}

// TotalSize returns the summed byte length of all files in the bundle.
func (b *Bundle) TotalSize() int64 {
	var size int64
	for f := range b.Files() {
		size += f.Size()
	}

	return size
}

// Summary computes a [Summary] of the bundle from its descriptor and
// the current (constant) file count and total size. It is recomputed
// on every call and never cached.
func (b *Bundle) Summary() Summary {
	return Summary{
		Name:      b.desc.Name,
		Version:   b.desc.Version,
		License:   b.desc.License,
		FileCount: b.FileCount(),
		TotalSize: b.TotalSize(),
	}
}
