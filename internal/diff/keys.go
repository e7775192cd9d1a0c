// Package diff computes reports between two flattened catalogs.
package diff

import (
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/localediff/api"
	"github.com/agentic-research/localediff/internal/catalog"
)

// keyIndex interns the union of both catalogs' paths so key sets can be
// manipulated as bitmaps. Ids are assigned in lexicographic order, so
// bitmap iteration yields sorted paths for free.
type keyIndex struct {
	paths []string          // id → path
	ids   map[string]uint32 // path → id
}

func newKeyIndex(maps ...catalog.FlatMap) *keyIndex {
	seen := make(map[string]bool)
	var paths []string
	for _, m := range maps {
		for p := range m {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}
	sort.Strings(paths)

	ids := make(map[string]uint32, len(paths))
	for i, p := range paths {
		ids[p] = uint32(i)
	}
	return &keyIndex{paths: paths, ids: ids}
}

func (ix *keyIndex) bitmap(m catalog.FlatMap) *roaring.Bitmap {
	bm := roaring.New()
	for p := range m {
		bm.Add(ix.ids[p])
	}
	return bm
}

func (ix *keyIndex) materialize(bm *roaring.Bitmap) []string {
	if bm.IsEmpty() {
		return nil
	}
	out := make([]string, 0, bm.GetCardinality())
	iter := bm.Iterator()
	for iter.HasNext() {
		out = append(out, ix.paths[iter.Next()])
	}
	return out
}

// KeyDifference computes the symmetric structural difference between
// two flattened catalogs. Values are ignored: the report is purely a
// function of the two key sets and deterministic for fixed input.
// Added holds paths only in to, Removed paths only in from, both in
// lexicographic order.
func KeyDifference(fromID, toID string, from, to catalog.FlatMap) *api.KeyDiff {
	ix := newKeyIndex(from, to)
	fromSet := ix.bitmap(from)
	toSet := ix.bitmap(to)

	return &api.KeyDiff{
		From:    fromID,
		To:      toID,
		Added:   ix.materialize(roaring.AndNot(toSet, fromSet)),
		Removed: ix.materialize(roaring.AndNot(fromSet, toSet)),
	}
}
