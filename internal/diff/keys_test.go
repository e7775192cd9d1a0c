package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentic-research/localediff/internal/catalog"
)

// ---------------------------------------------------------------------------
// Key difference
// ---------------------------------------------------------------------------

func TestKeyDifference_AddedAndRemoved(t *testing.T) {
	from := catalog.FlatMap{"a.b": "1", "a.c": "2", "only.from": "x"}
	to := catalog.FlatMap{"a.b": "1", "a.c": "3", "only.to": "y"}

	report := KeyDifference("en", "fr", from, to)
	assert.Equal(t, "en", report.From)
	assert.Equal(t, "fr", report.To)
	assert.Equal(t, []string{"only.to"}, report.Added)
	assert.Equal(t, []string{"only.from"}, report.Removed)
}

func TestKeyDifference_IdenticalKeySets(t *testing.T) {
	// Values differ but the key sets match — no structural difference.
	from := catalog.FlatMap{"a.b": "1", "a.c": "2"}
	to := catalog.FlatMap{"a.b": "1", "a.c": "3"}

	report := KeyDifference("en", "fr", from, to)
	assert.Empty(t, report.Added)
	assert.Empty(t, report.Removed)
}

func TestKeyDifference_Symmetry(t *testing.T) {
	a := catalog.FlatMap{"x": "1", "shared": "s"}
	b := catalog.FlatMap{"y": "2", "z": "3", "shared": "s"}

	ab := KeyDifference("a", "b", a, b)
	ba := KeyDifference("b", "a", b, a)
	assert.Equal(t, ab.Added, ba.Removed)
	assert.Equal(t, ab.Removed, ba.Added)
}

func TestKeyDifference_Empty(t *testing.T) {
	report := KeyDifference("a", "b", catalog.FlatMap{}, catalog.FlatMap{})
	assert.Empty(t, report.Added)
	assert.Empty(t, report.Removed)
}

func TestKeyDifference_SortedOutput(t *testing.T) {
	from := catalog.FlatMap{}
	to := catalog.FlatMap{"c": "3", "a": "1", "b": "2"}

	report := KeyDifference("en", "fr", from, to)
	assert.Equal(t, []string{"a", "b", "c"}, report.Added)
}
