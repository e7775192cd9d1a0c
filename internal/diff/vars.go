package diff

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/agentic-research/localediff/api"
	"github.com/agentic-research/localediff/internal/catalog"
)

// placeholderRe matches the two interpolation forms used in catalog
// values: {{name}} and [[name]].
var placeholderRe = regexp.MustCompile(`(?i)\{\{([a-z0-9_]+)\}\}|\[\[([a-z0-9_]+)\]\]`)

// ExtractVars returns the deduplicated, sorted, lowercased placeholder
// names embedded in a translation value. Scanning is non-overlapping,
// left to right. A value without placeholders yields an empty set.
func ExtractVars(value string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(value, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		name = strings.ToLower(name)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ValidateVariables compares placeholder sets key by key. Only keys
// present in both catalogs are checked; a key missing from to is never
// a mismatch. Two empty sets never mismatch either. Results are sorted
// by key.
func ValidateVariables(from, to catalog.FlatMap) []api.VarMismatch {
	paths := make([]string, 0, len(from))
	for p := range from {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var mismatches []api.VarMismatch
	for _, path := range paths {
		target, ok := to[path]
		if !ok {
			continue
		}
		fromVars := ExtractVars(from[path])
		toVars := ExtractVars(target)
		if !slices.Equal(fromVars, toVars) {
			mismatches = append(mismatches, api.VarMismatch{
				Key:      path,
				FromVars: fromVars,
				ToVars:   toVars,
			})
		}
	}
	return mismatches
}
