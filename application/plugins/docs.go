package plugins

// FeatureDoc describes one registered feature's search-spec signature
// and purpose, for `list-features`/`export-schema`-style introspection.
// The Registry itself only ever needs a name and a builder to bind a
// search-spec; this is presentation metadata layered on top; keyed by
// the same names RegisterBuiltins uses.
type FeatureDoc struct {
	Signature   string
	Description string
}

// builtinDocs is the FeatureDoc table for every feature RegisterBuiltins
// registers, grouped the way EvaluatorNames/OpenListNames/EngineNames
// group the Registry itself.
var builtinDocs = map[string]FeatureDoc{
	"g":        {"g()", "Cumulative cost so far, with the engine's cost type applied."},
	"const":    {"const(value)", "A fixed estimate, ignoring the state entirely."},
	"h":        {"h()", "Placeholder heuristic contract point; always reports zero."},
	"weight":   {"weight(evaluator, w)", "Scales an inner evaluator's value by w."},
	"sum":      {"sum([evaluator, ...])", "Adds every inner evaluator's value (spec.md's f = g + h shape)."},
	"max":      {"max([evaluator, ...])", "Takes the largest of every inner evaluator's value."},
	"pref":     {"pref(evaluator, operators=[name,...])", "Recommends the named operators (or every applicable one) as preferred for the expansion."},
	"pathcost": {"pathcost()", "Path-dependent running cost: the cheapest cost reported through transition notifications, or g for a state not yet notified."},
	"cached":   {"cached(evaluator)", "Memoizes an inner evaluator's result per state in a bounded ristretto-backed cache."},

	"single":      {"single(evaluator)", "Orders entries by one evaluator's value."},
	"tiebreaking": {"tiebreaking([evaluator, ...])", "Orders lexicographically across several evaluators."},
	"pareto":      {"pareto(cost, count)", "Pops round-robin across the non-dominated (cost, count) buckets, first-in first-out within a bucket."},
	"alternation": {"alternation([child(list, boost=N, pref_only=bool), ...])", "Round-robins Pop across several sub-lists, optionally boosting one that carries preferred entries."},

	"eager":  {"eager(open_list, reopen_closed=bool, bound=N, preferred=[evaluator, ...])", "General-purpose eager best-first search over any open list."},
	"astar":  {"astar(heuristic, reopen_closed=bool, bound=N, preferred=[evaluator, ...])", "eager(single(sum([g(), heuristic])), reopen_closed=true) by convention."},
	"wastar": {"wastar(heuristic, weight=W, reopen_closed=bool, bound=N, preferred=[evaluator, ...])", "Weighted A*: eager(single(sum([g(), weight(heuristic, W)])))."},
	"gbfs":   {"gbfs(heuristic, bound=N, preferred=[evaluator, ...])", "Greedy best-first search: eager(single(heuristic))."},
}

// DocFor looks up a builtin feature's documentation by name. ok is
// false for a name RegisterBuiltins never registers (e.g. a caller's
// own custom feature) rather than for any bug in this table.
func DocFor(name string) (FeatureDoc, bool) {
	d, ok := builtinDocs[name]
	return d, ok
}
