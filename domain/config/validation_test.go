package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "with path",
			err:  ValidationError{Path: "astar.w", Message: "expected number, got bool"},
			want: "astar.w: expected number, got bool",
		},
		{
			name: "without path",
			err:  ValidationError{Message: "missing required option"},
			want: "missing required option",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	var none ValidationErrors
	if got := none.Error(); got != "no validation errors" {
		t.Errorf("empty Error() = %q", got)
	}

	one := ValidationErrors{{Path: "a", Message: "bad"}}
	if got := one.Error(); got != "a: bad" {
		t.Errorf("single Error() = %q", got)
	}

	many := ValidationErrors{
		{Path: "a", Message: "bad"},
		{Path: "b", Message: "worse"},
	}
	got := many.Error()
	if !strings.Contains(got, "2 validation errors") {
		t.Errorf("Error() = %q, want count prefix", got)
	}
	if !strings.Contains(got, "a: bad") || !strings.Contains(got, "b: worse") {
		t.Errorf("Error() = %q, want both messages", got)
	}
}

func TestValidationErrors_HasErrors(t *testing.T) {
	t.Parallel()

	var none ValidationErrors
	if none.HasErrors() {
		t.Error("HasErrors() on empty = true")
	}

	one := ValidationErrors{{Message: "bad"}}
	if !one.HasErrors() {
		t.Error("HasErrors() on non-empty = false")
	}
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	schema := []OptionSchema{
		{Key: "w", Kind: ValueNumber, Required: true},
		{Key: "transform", Kind: ValueFeature, Required: false},
	}

	tests := []struct {
		name    string
		spec    *FeatureSpec
		wantErr []string
	}{
		{
			name: "valid",
			spec: &FeatureSpec{
				Name: "weight",
				Options: []Option{
					{Key: "w", Value: Value{Kind: ValueNumber, Number: 2}},
				},
			},
		},
		{
			name: "missing required",
			spec: &FeatureSpec{Name: "weight"},
			wantErr: []string{
				`missing required option "w"`,
			},
		},
		{
			name: "wrong kind",
			spec: &FeatureSpec{
				Name: "weight",
				Options: []Option{
					{Key: "w", Value: Value{Kind: ValueBool, Bool: true}},
				},
			},
			wantErr: []string{
				"expected number, got bool",
			},
		},
		{
			name: "unknown option",
			spec: &FeatureSpec{
				Name: "weight",
				Options: []Option{
					{Key: "w", Value: Value{Kind: ValueNumber, Number: 2}},
					{Key: "bogus", Value: Value{Kind: ValueBool, Bool: true}},
				},
			},
			wantErr: []string{
				`unknown option "bogus"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := NewValidator()
			errs := v.Validate("weight", tt.spec, schema)

			if len(tt.wantErr) == 0 {
				if errs.HasErrors() {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}

			joined := errs.Error()
			for _, want := range tt.wantErr {
				if !strings.Contains(joined, want) {
					t.Errorf("errors %q missing %q", joined, want)
				}
			}
		})
	}
}
