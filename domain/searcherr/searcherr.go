// Package searcherr defines the error-kind taxonomy shared across the
// planner (spec.md §7): INPUT, CONFIG, RESOURCE, UNSUPPORTED, INTERNAL.
// Every package-level sentinel error elsewhere in the module is wrapped
// under exactly one of these kinds so callers can branch on severity
// with errors.Is without caring which package raised it, the same way
// the teacher's domain/agent and domain/config errors.go files define
// sentinels that interfaces/cli maps to process exit codes.
package searcherr

import "errors"

// Kind classifies an error for exit-code mapping (spec.md §6, §7).
type Kind int

const (
	// KindInput marks a malformed task or search-spec (spec.md §6
	// SEARCH_INPUT_ERROR).
	KindInput Kind = iota
	// KindConfig marks a well-formed but invalid feature configuration
	// (unknown feature, wrong option kind, missing required option).
	KindConfig
	// KindResource marks a runtime resource exhaustion: out of memory
	// or wall-clock timeout.
	KindResource
	// KindUnsupported marks a requested feature combination the engine
	// does not implement (spec.md §6 SEARCH_UNSUPPORTED).
	KindUnsupported
	// KindInternal marks a programming error: an illegal state
	// transition, a broken invariant. Fatal, not recoverable.
	KindInternal
)

// String renders the kind's name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "INPUT"
	case KindConfig:
		return "CONFIG"
	case KindResource:
		return "RESOURCE"
	case KindUnsupported:
		return "UNSUPPORTED"
	case KindInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// Sentinels, one per kind, that package-level errors wrap with
// fmt.Errorf("%w: ...", searcherr.Input) so errors.Is(err,
// searcherr.Input) holds regardless of which package raised it.
var (
	Input       = errors.New("input error")
	Config      = errors.New("config error")
	Resource    = errors.New("resource error")
	Unsupported = errors.New("unsupported")
	Internal    = errors.New("internal error")
)

// KindOf maps a sentinel to its Kind, used by interfaces/cli to choose
// an exit code without a type switch per package.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, Input):
		return KindInput
	case errors.Is(err, Config):
		return KindConfig
	case errors.Is(err, Resource):
		return KindResource
	case errors.Is(err, Unsupported):
		return KindUnsupported
	default:
		return KindInternal
	}
}
