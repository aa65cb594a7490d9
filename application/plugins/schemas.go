package plugins

import "github.com/felixgeelhaar/planner-go/domain/config"

// builtinSchemas declares, for every builtin feature, the keyword
// options it accepts (domain/config.OptionSchema) — the binding-time
// counterpart to infrastructure/searchspec's parse-time grammar: the
// parser already guarantees well-formed syntax, this lets
// validateOptions catch a misspelled keyword (e.g.
// "reopenclosed" for "reopen_closed") before a builder's own ad hoc
// argument parsing gets to it, with every offending key reported at
// once instead of one-at-a-time.  Purely additive: a feature's
// positional arguments (Option.Key == "") are never checked here,
// since domain/config.Validator only inspects keyword options.
var builtinSchemas = map[string][]config.OptionSchema{
	"g":        {},
	"const":    {{Key: "value", Kind: config.ValueNumber}},
	"h":        {},
	"weight":   {{Key: "evaluator", Kind: config.ValueFeature}, {Key: "weight", Kind: config.ValueNumber}},
	"sum":      {{Key: "evaluators", Kind: config.ValueList}},
	"max":      {{Key: "evaluators", Kind: config.ValueList}},
	"pref":     {{Key: "evaluator", Kind: config.ValueFeature}, {Key: "operators", Kind: config.ValueList}},
	"pathcost": {},
	"cached":   {{Key: "evaluator", Kind: config.ValueFeature}},

	"single":      {{Key: "evaluator", Kind: config.ValueFeature}},
	"tiebreaking": {{Key: "evaluators", Kind: config.ValueList}},
	"pareto":      {{Key: "cost", Kind: config.ValueFeature}, {Key: "count", Kind: config.ValueFeature}},
	"alternation": {{Key: "children", Kind: config.ValueList}},
	"child":       {{Key: "list", Kind: config.ValueFeature}, {Key: "boost", Kind: config.ValueNumber}, {Key: "pref_only", Kind: config.ValueBool}},

	"eager": {
		{Key: "open_list", Kind: config.ValueFeature},
		{Key: "reopen_closed", Kind: config.ValueBool},
		{Key: "bound", Kind: config.ValueNumber},
		{Key: "preferred", Kind: config.ValueList},
	},
	"astar": {
		{Key: "heuristic", Kind: config.ValueFeature},
		{Key: "reopen_closed", Kind: config.ValueBool},
		{Key: "bound", Kind: config.ValueNumber},
		{Key: "preferred", Kind: config.ValueList},
	},
	"wastar": {
		{Key: "heuristic", Kind: config.ValueFeature},
		{Key: "weight", Kind: config.ValueNumber},
		{Key: "reopen_closed", Kind: config.ValueBool},
		{Key: "bound", Kind: config.ValueNumber},
		{Key: "preferred", Kind: config.ValueList},
	},
	"gbfs": {
		{Key: "heuristic", Kind: config.ValueFeature},
		{Key: "reopen_closed", Kind: config.ValueBool},
		{Key: "bound", Kind: config.ValueNumber},
		{Key: "preferred", Kind: config.ValueList},
	},
}

// validateOptions runs spec's keyword options against name's declared
// schema, when one is registered. A feature registered outside
// RegisterBuiltins (no schema entry) is never checked — this is an
// opt-in safety net over the builtin set, not a requirement the
// Registry itself enforces on third-party registrations.
func validateOptions(name string, spec *config.FeatureSpec) error {
	schema, ok := builtinSchemas[name]
	if !ok {
		return nil
	}
	v := config.NewValidator()
	if errs := v.Validate(name, spec, schema); errs.HasErrors() {
		return errs
	}
	return nil
}
