package diff

import (
	"sort"

	"github.com/agentic-research/localediff/internal/blacklist"
	"github.com/agentic-research/localediff/internal/catalog"
)

// UntranslatedKeys returns every path present in both catalogs whose
// target value is byte-equal to the source value — a likely sign the
// entry was copied over but never translated. Paths absent from to are
// not reported. Result is sorted lexicographically.
func UntranslatedKeys(from, to catalog.FlatMap) []string {
	var keys []string
	for path, value := range to {
		if src, ok := from[path]; ok && src == value {
			keys = append(keys, path)
		}
	}
	sort.Strings(keys)
	return keys
}

// PruneWithBlacklist drops keys whose effective blacklist entry for the
// locale is set. Keys without an entry at either level are kept. The
// result is a sorted subset of the input.
func PruneWithBlacklist(table *blacklist.Table, locale string, keys []string) []string {
	kept := make([]string, 0, len(keys))
	for _, key := range keys {
		if !table.Effective(locale, key) {
			kept = append(kept, key)
		}
	}
	sort.Strings(kept)
	return kept
}
