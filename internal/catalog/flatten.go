package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Flatten converts a nested catalog tree into its flat dot-path form.
// Traversal is depth-first and the result is independent of map order.
// A tree with no leaves yields an empty, non-nil FlatMap.
//
// Flattening is a bijection between the tree's leaves and the returned
// entries as long as no key segment contains the separator; such
// segments would make distinct paths collapse, so they are rejected
// with MalformedInputError instead.
func Flatten(tree Tree) (FlatMap, error) {
	flat := make(FlatMap)
	if err := flattenInto(tree, "", flat); err != nil {
		return nil, err
	}
	return flat, nil
}

func flattenInto(tree Tree, prefix string, flat FlatMap) error {
	for key, value := range tree {
		path := joinPath(prefix, key)
		if strings.Contains(key, Separator) {
			return &MalformedInputError{Path: path, Reason: "key segment contains separator"}
		}
		switch v := value.(type) {
		case string:
			flat[path] = v
		case Tree:
			if err := flattenInto(v, path, flat); err != nil {
				return err
			}
		default:
			return &MalformedInputError{Path: path, Reason: fmt.Sprintf("leaf is %T, want string", value)}
		}
	}
	return nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}

// Conflict records a flat entry whose path collided with an existing
// leaf or mapping during reconstruction. The mapping wins; the leaf
// value it displaced is preserved here for reporting.
type Conflict struct {
	Path     string // the path that was both a leaf and a mapping prefix
	Shadowed string // the leaf value that was displaced
}

// Unflatten rebuilds a nested tree from a flat map. Keys are processed
// in sorted order so the result is deterministic regardless of map
// iteration. A prefix that is both a terminal value and an internal
// mapping is reported as a Conflict and resolved in favor of the
// mapping, never silently.
func Unflatten(flat FlatMap) (Tree, []Conflict) {
	tree := make(Tree)
	var conflicts []Conflict

	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		value := flat[path]
		segments := strings.Split(path, Separator)
		node := tree
		prefix := ""
		for _, seg := range segments[:len(segments)-1] {
			prefix = joinPath(prefix, seg)
			switch child := node[seg].(type) {
			case Tree:
				node = child
			case string:
				// A shorter path already claimed this prefix as a leaf.
				conflicts = append(conflicts, Conflict{Path: prefix, Shadowed: child})
				next := make(Tree)
				node[seg] = next
				node = next
			default:
				next := make(Tree)
				node[seg] = next
				node = next
			}
		}
		last := segments[len(segments)-1]
		if _, isMapping := node[last].(Tree); isMapping {
			conflicts = append(conflicts, Conflict{Path: path, Shadowed: value})
			continue
		}
		node[last] = value
	}

	return tree, conflicts
}
