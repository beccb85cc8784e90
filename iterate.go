package schemas

import "iter"

// Files returns a lazy sequence over all files in the bundle. The
// traversal is pre-order depth-first: a directory's immediate files
// are yielded before recursing into its subdirectories. Each call
// re-traverses from the root, so the sequence is restartable and two
// successive traversals yield identical orderings.
func (b *Bundle) Files() iter.Seq[*File] {
	return func(yield func(*File) bool) {
		walkFiles(b.root, yield)
	}
}

func walkFiles(d *Dir, yield func(*File) bool) bool {
	for _, f := range d.files {
		if !yield(f) {
			return false
		}
	}

	for _, sub := range d.dirs {
		if !walkFiles(sub, yield) {
			return false
		}
	}

	return true
}

// FindFiles returns a lazy sequence over all files satisfying the
// given predicate. An empty sequence (not an error) results when
// nothing matches.
func (b *Bundle) FindFiles(predicate func(*File) bool) iter.Seq[*File] {
	return func(yield func(*File) bool) {
		for f := range b.Files() {
			if !predicate(f) {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// FilesByExtension returns a lazy sequence over all files whose
// extension exactly matches ext (case-sensitive, without the dot,
// e.g. "xsd").
func (b *Bundle) FilesByExtension(ext string) iter.Seq[*File] {
	return b.FindFiles(func(f *File) bool {
		return f.Extension() == ext
	})
}

// Paths returns a lazy sequence over all file paths in the bundle,
// in [Bundle.Files] order.
func (b *Bundle) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		for f := range b.Files() {
			if !yield(f.path) {
				return
			}
		}
	}
}
