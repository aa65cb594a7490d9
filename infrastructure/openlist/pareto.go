package openlist

import "github.com/felixgeelhaar/planner-go/domain/openlist"

// paretoKey is the two-objective key a Pareto bucket is indexed by:
// (cost, count). A bucket is on the Pareto frontier when no other
// present bucket dominates it (has both objectives <= and at least one
// strictly <).
type paretoKey struct {
	cost, count int
}

func (k paretoKey) dominatedBy(other paretoKey) bool {
	return other.cost <= k.cost && other.count <= k.count && other != k
}

// Pareto is the type-based open-list sibling from spec.md §4.5: unlike
// BestFirst's total order, Pareto keeps every non-dominated (cost,
// count) bucket simultaneously available and cycles among them, so a
// state that is better on one objective and worse on another is never
// starved by a total-order tie-break.
type Pareto struct {
	buckets map[paretoKey][]openlist.Entry
	turn    int
	size    int
}

// NewPareto creates an empty Pareto open list.
func NewPareto() *Pareto {
	return &Pareto{buckets: make(map[paretoKey][]openlist.Entry)}
}

// Insert implements openlist.OpenList. key must carry exactly two
// values: [cost, count].
func (p *Pareto) Insert(key openlist.Key, entry openlist.Entry) {
	k := paretoKey{cost: key[0], count: key[1]}
	p.buckets[k] = append(p.buckets[k], entry)
	p.size++
}

// frontier returns the keys of every non-dominated bucket, in a stable
// order (ascending cost, then ascending count) so round-robin cycling
// is deterministic.
func (p *Pareto) frontier() []paretoKey {
	var keys []paretoKey
	for k, entries := range p.buckets {
		if len(entries) == 0 {
			continue
		}
		keys = append(keys, k)
	}
	var out []paretoKey
	for _, k := range keys {
		dominated := false
		for _, other := range keys {
			if k.dominatedBy(other) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, k)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b paretoKey) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.count < b.count
}

// Pop implements openlist.OpenList: it advances through the current
// Pareto frontier round-robin, popping the head entry of the next
// non-empty frontier bucket.
func (p *Pareto) Pop() (openlist.Entry, bool) {
	frontier := p.frontier()
	if len(frontier) == 0 {
		return openlist.Entry{}, false
	}
	if p.turn >= len(frontier) {
		p.turn = 0
	}
	k := frontier[p.turn]
	p.turn = (p.turn + 1) % len(frontier)

	bucket := p.buckets[k]
	entry := bucket[0]
	if len(bucket) == 1 {
		delete(p.buckets, k)
	} else {
		p.buckets[k] = bucket[1:]
	}
	p.size--
	return entry, true
}

// Empty implements openlist.OpenList.
func (p *Pareto) Empty() bool { return p.size == 0 }

// Clear implements openlist.OpenList.
func (p *Pareto) Clear() {
	p.buckets = make(map[paretoKey][]openlist.Entry)
	p.turn = 0
	p.size = 0
}

// Size implements openlist.OpenList.
func (p *Pareto) Size() int { return p.size }

var _ openlist.OpenList = (*Pareto)(nil)
