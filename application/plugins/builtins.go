package plugins

// RegisterBuiltins registers every evaluator, open-list and search-engine
// feature shipped by this module under the names used in the search-spec
// grammar (spec.md §4.4/§4.5/§4.6, SPEC_FULL.md §4.7). A fresh Registry
// from NewRegistry is empty; callers wanting the standard feature set
// call this once before binding a search-spec.
func RegisterBuiltins(r *Registry) {
	registerBuiltinEvaluators(r)
	registerBuiltinOpenLists(r)
	registerBuiltinEngines(r)
}

func registerBuiltinEvaluators(r *Registry) {
	must(r.RegisterEvaluator("g", buildG))
	must(r.RegisterEvaluator("const", buildConst))
	must(r.RegisterEvaluator("h", buildH))
	must(r.RegisterEvaluator("weight", buildWeight))
	must(r.RegisterEvaluator("sum", buildSum))
	must(r.RegisterEvaluator("max", buildMax))
	must(r.RegisterEvaluator("pref", buildPref))
	must(r.RegisterEvaluator("pathcost", buildPathCost))
	must(r.RegisterEvaluator("cached", buildCached))
}

func registerBuiltinOpenLists(r *Registry) {
	must(r.RegisterOpenList("single", buildSingle))
	must(r.RegisterOpenList("tiebreaking", buildTieBreaking))
	must(r.RegisterOpenList("pareto", buildPareto))
	must(r.RegisterOpenList("alternation", buildAlternation))
}

func registerBuiltinEngines(r *Registry) {
	must(r.RegisterEngine("eager", buildEager))
	must(r.RegisterEngine("astar", buildAstar))
	must(r.RegisterEngine("wastar", buildWastar))
	must(r.RegisterEngine("gbfs", buildGbfs))
}

// must panics on a registration error: RegisterBuiltins always runs
// against a fresh Registry, so a collision here is a programming error,
// not a runtime condition callers need to handle.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
