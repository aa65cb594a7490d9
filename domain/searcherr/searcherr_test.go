package searcherr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindInput, "INPUT"},
		{KindConfig, "CONFIG"},
		{KindResource, "RESOURCE"},
		{KindUnsupported, "UNSUPPORTED"},
		{KindInternal, "INTERNAL"},
		{Kind(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: malformed goal", Input)
	if got := KindOf(wrapped); got != KindInput {
		t.Errorf("KindOf(wrapped Input) = %v, want KindInput", got)
	}

	if got := KindOf(errors.New("unrelated")); got != KindInternal {
		t.Errorf("KindOf(unrelated) = %v, want KindInternal (fallback)", got)
	}
}
