package plugins

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/config"
)

// firstValue returns the value bound to the keyword key, falling back to
// the positionalIndex-th positional argument when key was not used as a
// keyword. Pass a negative positionalIndex to disable the positional
// fallback (for options that only ever make sense by keyword, like
// reopen_closed).
func firstValue(spec *config.FeatureSpec, key string, positionalIndex int) (config.Value, bool) {
	if v, ok := spec.Get(key); ok {
		return v, true
	}
	if positionalIndex < 0 {
		return config.Value{}, false
	}
	pos := spec.Positional()
	if positionalIndex >= len(pos) {
		return config.Value{}, false
	}
	return pos[positionalIndex], true
}

func numberArg(spec *config.FeatureSpec, key string, positionalIndex int, def float64) (float64, error) {
	v, ok := firstValue(spec, key, positionalIndex)
	if !ok {
		return def, nil
	}
	return v.AsNumber()
}

func boolArg(spec *config.FeatureSpec, key string, positionalIndex int, def bool) (bool, error) {
	v, ok := firstValue(spec, key, positionalIndex)
	if !ok {
		return def, nil
	}
	return v.AsBool()
}

func requiredFeature(spec *config.FeatureSpec, key string, positionalIndex int) (*config.FeatureSpec, error) {
	v, ok := firstValue(spec, key, positionalIndex)
	if !ok {
		return nil, fmt.Errorf("%w: %s(%s)", ErrMissingArgument, spec.Name, key)
	}
	return v.AsFeature()
}

func requiredList(spec *config.FeatureSpec, key string, positionalIndex int) ([]config.Value, error) {
	v, ok := firstValue(spec, key, positionalIndex)
	if !ok {
		return nil, fmt.Errorf("%w: %s(%s)", ErrMissingArgument, spec.Name, key)
	}
	return v.AsList()
}

// featureArg resolves a required nested evaluator argument into an
// EvaluatorBuilder.
func (r *Registry) featureArg(spec *config.FeatureSpec, key string, positionalIndex int) (EvaluatorBuilder, error) {
	fs, err := requiredFeature(spec, key, positionalIndex)
	if err != nil {
		return nil, err
	}
	return r.BuildEvaluator(fs)
}

// featureListArg resolves a required list-of-nested-evaluators argument
// (e.g. sum/max/tiebreaking's child evaluators) into EvaluatorBuilders.
func (r *Registry) featureListArg(spec *config.FeatureSpec, key string, positionalIndex int) ([]EvaluatorBuilder, error) {
	items, err := requiredList(spec, key, positionalIndex)
	if err != nil {
		return nil, err
	}
	out := make([]EvaluatorBuilder, len(items))
	for i, item := range items {
		fs, err := item.AsFeature()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		b, err := r.BuildEvaluator(fs)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// optionalIdentListArg resolves a list-of-identifiers argument that may
// be entirely absent (e.g. pref's operators=[...]), returning a nil
// slice rather than an error when key was never given.
func optionalIdentListArg(spec *config.FeatureSpec, key string, positionalIndex int) ([]string, error) {
	v, ok := firstValue(spec, key, positionalIndex)
	if !ok {
		return nil, nil
	}
	items, err := v.AsList()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, item := range items {
		ident, err := item.AsIdent()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out[i] = ident
	}
	return out, nil
}

// optionalFeatureListArg resolves a list-of-nested-evaluators argument
// that may be entirely absent (e.g. eager's preferred=[...]), returning
// a nil slice rather than an error when key was never given.
func (r *Registry) optionalFeatureListArg(spec *config.FeatureSpec, key string, positionalIndex int) ([]EvaluatorBuilder, error) {
	if _, ok := firstValue(spec, key, positionalIndex); !ok {
		return nil, nil
	}
	return r.featureListArg(spec, key, positionalIndex)
}

// openListArg resolves a required nested open-list argument into an
// OpenListBuilder.
func (r *Registry) openListArg(spec *config.FeatureSpec, key string, positionalIndex int) (OpenListBuilder, error) {
	fs, err := requiredFeature(spec, key, positionalIndex)
	if err != nil {
		return nil, err
	}
	return r.BuildOpenList(fs)
}
