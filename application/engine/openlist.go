package engine

import (
	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/openlist"
)

// EvaluatedOpenList bundles a domain/openlist.OpenList container with the
// evaluator(s) that compute the Key an entry is inserted under — spec.md
// §4.5 describes the open list itself as owning "the configured
// evaluator"; domain/openlist deliberately knows nothing about
// evaluation.Context (it only sees pre-computed Keys), so this glue lives
// here instead, one level up, where both packages are already in scope.
type EvaluatedOpenList interface {
	// Insert evaluates ctx and inserts entry under the resulting key.
	// deadEnd reports whether the configured evaluator proved ctx a dead
	// end (spec.md §4.5 is_dead_end); reliable reports whether that
	// proof can be trusted (is_reliable_dead_end).
	Insert(ctx evaluation.Context, entry openlist.Entry) (deadEnd, reliable bool)
	// Peek evaluates ctx and returns the key it would sort under,
	// without inserting anything — used for expansion-time statistics
	// (the f-value logged/recorded at spec.md §4.6 step 3).
	Peek(ctx evaluation.Context) (key openlist.Key, deadEnd bool)
	// Pop removes and returns the next entry to expand.
	Pop() (openlist.Entry, bool)
	Empty() bool
	Clear()
	Size() int
}

// Single wraps exactly one evaluator: the `single(evaluator)` feature
// from spec.md §4.5.
type Single struct {
	Eval evaluation.Evaluator
	List openlist.OpenList
}

// Insert implements EvaluatedOpenList.
func (s *Single) Insert(ctx evaluation.Context, entry openlist.Entry) (bool, bool) {
	r := s.Eval.Evaluate(ctx)
	if r.Infinite {
		return true, s.Eval.DeadEndsAreReliable()
	}
	s.List.Insert(openlist.Key{r.Value}, entry)
	return false, false
}

// Peek implements EvaluatedOpenList.
func (s *Single) Peek(ctx evaluation.Context) (openlist.Key, bool) {
	r := s.Eval.Evaluate(ctx)
	if r.Infinite {
		return nil, true
	}
	return openlist.Key{r.Value}, false
}

func (s *Single) Pop() (openlist.Entry, bool) { return s.List.Pop() }
func (s *Single) Empty() bool                 { return s.List.Empty() }
func (s *Single) Clear()                      { s.List.Clear() }
func (s *Single) Size() int                   { return s.List.Size() }

// TieBreaking wraps an ordered list of sub-evaluators whose values form
// the lexicographic key tuple — spec.md §4.5 "Tie-breaking." The first
// evaluator is primary: it alone decides is_dead_end, matching the
// eager loop's f_evaluator convention.
type TieBreaking struct {
	Evals []evaluation.Evaluator
	List  openlist.OpenList
}

// Insert implements EvaluatedOpenList.
func (t *TieBreaking) Insert(ctx evaluation.Context, entry openlist.Entry) (bool, bool) {
	key := make(openlist.Key, len(t.Evals))
	for i, e := range t.Evals {
		r := e.Evaluate(ctx)
		if i == 0 && r.Infinite {
			return true, e.DeadEndsAreReliable()
		}
		key[i] = r.Value
	}
	t.List.Insert(key, entry)
	return false, false
}

// Peek implements EvaluatedOpenList.
func (t *TieBreaking) Peek(ctx evaluation.Context) (openlist.Key, bool) {
	key := make(openlist.Key, len(t.Evals))
	for i, e := range t.Evals {
		r := e.Evaluate(ctx)
		if i == 0 && r.Infinite {
			return nil, true
		}
		key[i] = r.Value
	}
	return key, false
}

func (t *TieBreaking) Pop() (openlist.Entry, bool) { return t.List.Pop() }
func (t *TieBreaking) Empty() bool                 { return t.List.Empty() }
func (t *TieBreaking) Clear()                      { t.List.Clear() }
func (t *TieBreaking) Size() int                   { return t.List.Size() }

// Pareto wraps the two-objective (cost, count) Pareto/type-based sibling
// from spec.md §4.5.
type Pareto struct {
	Cost  evaluation.Evaluator
	Count evaluation.Evaluator
	List  openlist.OpenList
}

// Insert implements EvaluatedOpenList.
func (p *Pareto) Insert(ctx evaluation.Context, entry openlist.Entry) (bool, bool) {
	cr := p.Cost.Evaluate(ctx)
	if cr.Infinite {
		return true, p.Cost.DeadEndsAreReliable()
	}
	nr := p.Count.Evaluate(ctx)
	if nr.Infinite {
		return true, p.Count.DeadEndsAreReliable()
	}
	p.List.Insert(openlist.Key{cr.Value, nr.Value}, entry)
	return false, false
}

// Peek implements EvaluatedOpenList.
func (p *Pareto) Peek(ctx evaluation.Context) (openlist.Key, bool) {
	cr := p.Cost.Evaluate(ctx)
	if cr.Infinite {
		return nil, true
	}
	nr := p.Count.Evaluate(ctx)
	if nr.Infinite {
		return nil, true
	}
	return openlist.Key{cr.Value, nr.Value}, false
}

func (p *Pareto) Pop() (openlist.Entry, bool) { return p.List.Pop() }
func (p *Pareto) Empty() bool                 { return p.List.Empty() }
func (p *Pareto) Clear()                      { p.List.Clear() }
func (p *Pareto) Size() int                   { return p.List.Size() }

// AlternationChild is one branch of an Alternation: its own evaluated
// open list, plus a boost applied to its turn order when the inserted
// entry carries preferred-operator information (spec.md §4.5
// "boost_preferred adds a configured amount to the children that carry
// preferred information").
type AlternationChild struct {
	List      EvaluatedOpenList
	Boost     int
	PrefOnly  bool
	preferred bool // set once this child has ever received a Preferred insert
}

// Alternation round-robins Pop across its children, each independently
// evaluated — spec.md §4.5 "Alternation." A child's Boost extra turns
// are granted once it has received at least one preferred entry,
// matching the "children that carry preferred information" wording.
type Alternation struct {
	Children []*AlternationChild
	turn     int
	extra    int // remaining boosted turns for the current child
}

// Insert implements EvaluatedOpenList: every child gets a chance to
// accept entry (a PrefOnly child silently drops non-preferred inserts).
func (a *Alternation) Insert(ctx evaluation.Context, entry openlist.Entry) (bool, bool) {
	allDead := true
	reliable := true
	for _, c := range a.Children {
		if c.PrefOnly && !entry.Preferred {
			continue
		}
		dead, rel := c.List.Insert(ctx, entry)
		if entry.Preferred {
			c.preferred = true
		}
		if !dead {
			allDead = false
		}
		if !rel {
			reliable = false
		}
	}
	return allDead, allDead && reliable
}

// Pop implements EvaluatedOpenList: advances round-robin across
// children, granting a child's Boost worth of consecutive extra turns
// once it has seen a preferred entry.
func (a *Alternation) Pop() (openlist.Entry, bool) {
	n := len(a.Children)
	if n == 0 {
		return openlist.Entry{}, false
	}
	for tries := 0; tries < n*2; tries++ {
		c := a.Children[a.turn]
		if !c.List.Empty() {
			entry, ok := c.List.Pop()
			if ok {
				a.advance(c)
				return entry, true
			}
		}
		a.advanceTurn()
	}
	return openlist.Entry{}, false
}

func (a *Alternation) advance(c *AlternationChild) {
	if c.preferred && a.extra < c.Boost {
		a.extra++
		return
	}
	a.extra = 0
	a.advanceTurn()
}

func (a *Alternation) advanceTurn() {
	a.turn = (a.turn + 1) % len(a.Children)
}

// Peek implements EvaluatedOpenList: reports via the first child, the
// primary channel every Alternation is expected to carry.
func (a *Alternation) Peek(ctx evaluation.Context) (openlist.Key, bool) {
	if len(a.Children) == 0 {
		return nil, true
	}
	return a.Children[0].List.Peek(ctx)
}

// Empty implements EvaluatedOpenList.
func (a *Alternation) Empty() bool {
	for _, c := range a.Children {
		if !c.List.Empty() {
			return false
		}
	}
	return true
}

// Clear implements EvaluatedOpenList.
func (a *Alternation) Clear() {
	for _, c := range a.Children {
		c.List.Clear()
		c.preferred = false
	}
	a.turn, a.extra = 0, 0
}

// Size implements EvaluatedOpenList.
func (a *Alternation) Size() int {
	total := 0
	for _, c := range a.Children {
		total += c.List.Size()
	}
	return total
}

var (
	_ EvaluatedOpenList = (*Single)(nil)
	_ EvaluatedOpenList = (*TieBreaking)(nil)
	_ EvaluatedOpenList = (*Pareto)(nil)
	_ EvaluatedOpenList = (*Alternation)(nil)
)
