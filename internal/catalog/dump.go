package catalog

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"gopkg.in/yaml.v3"
)

// DumpFlat renders a flat map as a single-level YAML document.
// yaml.v3 emits map keys in sorted order, so output is deterministic.
func DumpFlat(flat FlatMap) ([]byte, error) {
	out, err := yaml.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("marshal flat catalog: %w", err)
	}
	return out, nil
}

// DumpTree renders a nested tree as a YAML document with the catalog
// id restored as the top-level key, the inverse of the strip done by Load.
func DumpTree(id string, tree Tree) ([]byte, error) {
	out, err := yaml.Marshal(map[string]any{id: tree})
	if err != nil {
		return nil, fmt.Errorf("marshal catalog %s: %w", id, err)
	}
	return out, nil
}

// Select narrows a catalog tree to the first subtree matched by a
// JSONPath selector. A scalar match is wrapped under a "value" key so
// the result is always a Tree.
func Select(tree Tree, selector string) (Tree, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", selector, err)
	}
	results := x.Get(tree)
	if len(results) == 0 {
		return nil, fmt.Errorf("selector %q matched nothing", selector)
	}
	switch v := results[0].(type) {
	case Tree:
		return v, nil
	default:
		return Tree{"value": v}, nil
	}
}
