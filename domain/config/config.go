// Package config provides the data model for a search-spec: the
// parenthesized feature-expression configuration language used to
// describe a search engine and its evaluator/open-list tree, e.g.
//
//	astar(heuristic=sum([g(), weight(h(), 2)]), bound=100)
//
// Both the CLI search-spec parser (infrastructure/searchspec) and the
// YAML run-configuration loader (infrastructure/config) produce this
// same AST, which application/plugins then binds against registered
// feature builders.
package config

import "fmt"

// ValueKind discriminates the payload carried by a Value.
type ValueKind int

const (
	// ValueFeature holds a nested FeatureSpec, e.g. h=ZeroAdapter().
	ValueFeature ValueKind = iota
	// ValueList holds an ordered list of Values, e.g. [g(), h()].
	ValueList
	// ValueIdent holds a bare identifier, e.g. a reference name.
	ValueIdent
	// ValueNumber holds a float64 (ints and floats share one kind).
	ValueNumber
	// ValueBool holds a boolean literal (true/false).
	ValueBool
)

// String renders the ValueKind for error messages.
func (k ValueKind) String() string {
	switch k {
	case ValueFeature:
		return "feature"
	case ValueList:
		return "list"
	case ValueIdent:
		return "identifier"
	case ValueNumber:
		return "number"
	case ValueBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is one option argument in a FeatureSpec. Exactly the field
// matching Kind is meaningful.
type Value struct {
	Kind    ValueKind
	Feature *FeatureSpec
	List    []Value
	Ident   string
	Number  float64
	Bool    bool
}

// AsFeature returns the nested feature, or an error if Value is not a feature.
func (v Value) AsFeature() (*FeatureSpec, error) {
	if v.Kind != ValueFeature {
		return nil, fmt.Errorf("%w: expected feature, got %s", ErrWrongValueKind, v.Kind)
	}
	return v.Feature, nil
}

// AsList returns the nested list, or an error if Value is not a list.
func (v Value) AsList() ([]Value, error) {
	if v.Kind != ValueList {
		return nil, fmt.Errorf("%w: expected list, got %s", ErrWrongValueKind, v.Kind)
	}
	return v.List, nil
}

// AsIdent returns the identifier, or an error if Value is not one.
func (v Value) AsIdent() (string, error) {
	if v.Kind != ValueIdent {
		return "", fmt.Errorf("%w: expected identifier, got %s", ErrWrongValueKind, v.Kind)
	}
	return v.Ident, nil
}

// AsNumber returns the number, or an error if Value is not one.
func (v Value) AsNumber() (float64, error) {
	if v.Kind != ValueNumber {
		return 0, fmt.Errorf("%w: expected number, got %s", ErrWrongValueKind, v.Kind)
	}
	return v.Number, nil
}

// AsBool returns the bool, or an error if Value is not one.
func (v Value) AsBool() (bool, error) {
	if v.Kind != ValueBool {
		return false, fmt.Errorf("%w: expected bool, got %s", ErrWrongValueKind, v.Kind)
	}
	return v.Bool, nil
}

// Option is one keyword or positional binding inside a FeatureSpec's
// argument list. Key is empty for a positional argument.
type Option struct {
	Key   string
	Value Value
}

// FeatureSpec is one node of the search-spec AST: a feature name
// (registered under that name in application/plugins) plus its
// ordered argument list. Arguments may themselves carry nested
// FeatureSpec values, producing the evaluator/open-list composition
// tree described in spec.md §4.4/§4.5.
type FeatureSpec struct {
	Name    string
	Options []Option
}

// Get returns the first keyword option bound to key.
func (f *FeatureSpec) Get(key string) (Value, bool) {
	for _, opt := range f.Options {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return Value{}, false
}

// Positional returns the option arguments with no keyword, in order.
func (f *FeatureSpec) Positional() []Value {
	var out []Value
	for _, opt := range f.Options {
		if opt.Key == "" {
			out = append(out, opt.Value)
		}
	}
	return out
}
