package config

import (
	"fmt"
	"strings"
)

// ValidationError reports one malformed option within a FeatureSpec.
type ValidationError struct {
	// Path identifies the option, e.g. "astar.evaluator" or "sum[1]".
	Path string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// OptionSchema describes one option a feature accepts, for the
// "required keyword options present, no unknown keys" check that
// application/plugins runs before invoking a builder.
type OptionSchema struct {
	Key      string
	Kind     ValueKind
	Required bool
}

// Validator checks a FeatureSpec's options against a declared schema.
// It is the binding-time counterpart of infrastructure/searchspec's
// parse-time grammar checks: the parser guarantees well-formed syntax,
// the Validator guarantees the bound feature got the options it needs.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks spec's options against schema and returns any errors.
func (v *Validator) Validate(path string, spec *FeatureSpec, schema []OptionSchema) ValidationErrors {
	v.errors = nil

	known := make(map[string]OptionSchema, len(schema))
	for _, s := range schema {
		known[s.Key] = s
	}

	seen := make(map[string]bool, len(spec.Options))
	for _, opt := range spec.Options {
		if opt.Key == "" {
			continue
		}
		seen[opt.Key] = true
		s, ok := known[opt.Key]
		if !ok {
			v.addError(path, fmt.Sprintf("unknown option %q for %s", opt.Key, spec.Name))
			continue
		}
		if opt.Value.Kind != s.Kind {
			v.addError(fmt.Sprintf("%s.%s", path, opt.Key),
				fmt.Sprintf("expected %s, got %s", s.Kind, opt.Value.Kind))
		}
	}

	for _, s := range schema {
		if s.Required && !seen[s.Key] {
			v.addError(path, fmt.Sprintf("missing required option %q for %s", s.Key, spec.Name))
		}
	}

	return v.errors
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}
