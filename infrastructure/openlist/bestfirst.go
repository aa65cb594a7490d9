// Package openlist implements the open-list family from spec.md §4.5:
// a bucketed best-first list (BestFirst, which also serves as the
// tie-breaking variant since its Key already carries a lexicographic
// tuple), round-robin alternation with a preferred-operator boost, and
// a Pareto/type-based sibling.
package openlist

import (
	"sort"

	"github.com/felixgeelhaar/planner-go/domain/openlist"
)

// BestFirst is a bucketed best-first open list: entries are grouped
// into buckets by their exact Key, buckets are kept in ascending
// lexicographic order, and Pop drains the minimal bucket FIFO. A single-
// element Key gives plain best-first order; a multi-element Key gives
// tie-breaking by the trailing sub-evaluator values, both expressed by
// the same bucketing logic (spec.md §4.5).
type BestFirst struct {
	buckets map[string][]openlist.Entry
	keys    []openlist.Key // kept sorted ascending
	size    int
}

// NewBestFirst creates an empty bucketed best-first open list.
func NewBestFirst() *BestFirst {
	return &BestFirst{buckets: make(map[string][]openlist.Entry)}
}

// Insert implements openlist.OpenList.
func (b *BestFirst) Insert(key openlist.Key, entry openlist.Entry) {
	k := keyString(key)
	if _, exists := b.buckets[k]; !exists {
		i := sort.Search(len(b.keys), func(i int) bool { return !b.keys[i].Less(key) })
		b.keys = append(b.keys, nil)
		copy(b.keys[i+1:], b.keys[i:])
		b.keys[i] = key
	}
	b.buckets[k] = append(b.buckets[k], entry)
	b.size++
}

// Pop implements openlist.OpenList.
func (b *BestFirst) Pop() (openlist.Entry, bool) {
	if len(b.keys) == 0 {
		return openlist.Entry{}, false
	}
	minKey := b.keys[0]
	k := keyString(minKey)
	bucket := b.buckets[k]
	entry := bucket[0]

	if len(bucket) == 1 {
		delete(b.buckets, k)
		b.keys = b.keys[1:]
	} else {
		b.buckets[k] = bucket[1:]
	}
	b.size--
	return entry, true
}

// Empty implements openlist.OpenList.
func (b *BestFirst) Empty() bool { return b.size == 0 }

// Clear implements openlist.OpenList.
func (b *BestFirst) Clear() {
	b.buckets = make(map[string][]openlist.Entry)
	b.keys = nil
	b.size = 0
}

// Size implements openlist.OpenList.
func (b *BestFirst) Size() int { return b.size }

func keyString(k openlist.Key) string {
	buf := make([]rune, 0, len(k)*2)
	for _, v := range k {
		buf = append(buf, rune(v), ',')
	}
	return string(buf)
}

var _ openlist.OpenList = (*BestFirst)(nil)
