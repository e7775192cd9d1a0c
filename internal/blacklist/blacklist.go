// Package blacklist holds the table of catalog keys excluded from
// untranslated-key reporting (proper nouns, format strings, URLs —
// entries that legitimately stay identical across locales).
package blacklist

// Table is a two-level override map: Defaults applies to every locale,
// and a locale's own entries win on conflict.
type Table struct {
	Defaults map[string]bool
	Locales  map[string]map[string]bool
}

// Effective resolves the blacklist state of one path for one locale.
// A locale absent from the table contributes no overrides; a path
// absent from both levels is not blacklisted.
func (t *Table) Effective(locale, path string) bool {
	if t == nil {
		return false
	}
	if overrides, ok := t.Locales[locale]; ok {
		if blocked, ok := overrides[path]; ok {
			return blocked
		}
	}
	return t.Defaults[path]
}
