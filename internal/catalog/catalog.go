// Package catalog loads hierarchical translation catalogs and converts
// between their nested and flattened forms.
package catalog

import "fmt"

// Separator joins key segments into flat dot-paths.
const Separator = "."

// Tree is a nested translation document: every value is either a leaf
// string or another Tree.
type Tree = map[string]any

// FlatMap is the single-level view of a Tree: dot-joined leaf paths
// mapped to their string values.
type FlatMap = map[string]string

// Catalog is one locale's translation document. ID is the locale code
// derived from the source filename stem; Root is the subtree below the
// document's top-level catalog key.
type Catalog struct {
	ID   string
	Root Tree
}

// MalformedInputError reports a document that violates the catalog
// format: a non-mapping root, a non-string leaf, or a key segment that
// contains the path separator.
type MalformedInputError struct {
	Path   string // dot-path to the offending node ("" = document root)
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed catalog: %s", e.Reason)
	}
	return fmt.Sprintf("malformed catalog at %q: %s", e.Path, e.Reason)
}
