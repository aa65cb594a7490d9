package config

import "testing"

func TestFeatureSpec_Get(t *testing.T) {
	t.Parallel()

	spec := &FeatureSpec{
		Name: "weight",
		Options: []Option{
			{Key: "w", Value: Value{Kind: ValueNumber, Number: 2}},
		},
	}

	v, ok := spec.Get("w")
	if !ok {
		t.Fatal("Get(\"w\") = false, want true")
	}
	if v.Number != 2 {
		t.Errorf("Get(\"w\").Number = %v, want 2", v.Number)
	}

	if _, ok := spec.Get("missing"); ok {
		t.Error("Get(\"missing\") = true, want false")
	}
}

func TestFeatureSpec_Positional(t *testing.T) {
	t.Parallel()

	spec := &FeatureSpec{
		Name: "sum",
		Options: []Option{
			{Value: Value{Kind: ValueIdent, Ident: "g"}},
			{Key: "w", Value: Value{Kind: ValueNumber, Number: 2}},
			{Value: Value{Kind: ValueIdent, Ident: "h"}},
		},
	}

	got := spec.Positional()
	if len(got) != 2 {
		t.Fatalf("Positional() returned %d values, want 2", len(got))
	}
	if got[0].Ident != "g" || got[1].Ident != "h" {
		t.Errorf("Positional() = %v, want [g h]", got)
	}
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   Value
		call    func(Value) (any, error)
		want    any
		wantErr bool
	}{
		{
			name:  "AsFeature ok",
			value: Value{Kind: ValueFeature, Feature: &FeatureSpec{Name: "g"}},
			call: func(v Value) (any, error) {
				return v.AsFeature()
			},
			want: &FeatureSpec{Name: "g"},
		},
		{
			name:  "AsNumber wrong kind",
			value: Value{Kind: ValueBool, Bool: true},
			call: func(v Value) (any, error) {
				return v.AsNumber()
			},
			wantErr: true,
		},
		{
			name:  "AsIdent ok",
			value: Value{Kind: ValueIdent, Ident: "astar"},
			call: func(v Value) (any, error) {
				return v.AsIdent()
			},
			want: "astar",
		},
		{
			name:  "AsBool ok",
			value: Value{Kind: ValueBool, Bool: true},
			call: func(v Value) (any, error) {
				return v.AsBool()
			},
			want: true,
		},
		{
			name:  "AsList ok",
			value: Value{Kind: ValueList, List: []Value{{Kind: ValueNumber, Number: 1}}},
			call: func(v Value) (any, error) {
				return v.AsList()
			},
			want: []Value{{Kind: ValueNumber, Number: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.call(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch want := tt.want.(type) {
			case *FeatureSpec:
				gotSpec := got.(*FeatureSpec)
				if gotSpec.Name != want.Name {
					t.Errorf("got %+v, want %+v", gotSpec, want)
				}
			case []Value:
				gotList := got.([]Value)
				if len(gotList) != len(want) {
					t.Errorf("got %+v, want %+v", gotList, want)
				}
			default:
				if got != tt.want {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestValueKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind ValueKind
		want string
	}{
		{ValueFeature, "feature"},
		{ValueList, "list"},
		{ValueIdent, "identifier"},
		{ValueNumber, "number"},
		{ValueBool, "bool"},
		{ValueKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ValueKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
