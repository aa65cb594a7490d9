package cli

import (
	"github.com/felixgeelhaar/planner-go/application/engine"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// Process exit codes (spec.md §6). Numeric values are this module's own
// assignment: spec.md names the codes but does not fix their numbers,
// and the retrieval pack's filtered original_source does not carry the
// C++ ExitCode enum's definition, only call sites. 0 means success by
// convention; the rest are picked in ascending severity and kept stable
// once assigned since scripts may depend on them.
const (
	ExitSuccess                  = 0
	ExitSearchInputError         = 1
	ExitSearchUnsolvedIncomplete = 2
	ExitSearchOutOfMemory        = 3
	ExitSearchTimeout            = 4
	ExitSearchUnsupported        = 5
	ExitSearchInternalError      = 6
)

// exitCodeForErr maps a build-time error (raised before a search even
// starts, e.g. an unparsable search-spec or an unknown feature) to a
// process exit code via its searcherr.Kind.
func exitCodeForErr(err error) int {
	switch searcherr.KindOf(err) {
	case searcherr.KindInput:
		return ExitSearchInputError
	case searcherr.KindConfig:
		return ExitSearchInputError
	case searcherr.KindResource:
		return ExitSearchOutOfMemory
	case searcherr.KindUnsupported:
		return ExitSearchUnsupported
	default:
		return ExitSearchInternalError
	}
}

// exitCodeForOutcome maps a completed run's Outcome to a process exit
// code. OutcomeSolved is handled by the caller before reaching here.
func exitCodeForOutcome(o engine.Outcome) int {
	switch o {
	case engine.OutcomeFailed:
		return ExitSearchUnsolvedIncomplete
	case engine.OutcomeTimeout:
		return ExitSearchTimeout
	case engine.OutcomeOutOfMemory:
		return ExitSearchOutOfMemory
	case engine.OutcomeUnsupported:
		return ExitSearchUnsupported
	default:
		return ExitSearchInternalError
	}
}

// ExitCode maps an error returned from App.Execute/ExecuteWithArgs to a
// process exit code: nil is ExitSuccess, an *exitError (a non-Solved
// search outcome, already reported to stderr by the command) carries
// its own code, and anything else is classified through
// searcherr.KindOf.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return exitCodeForErr(err)
}

// AlreadyReported reports whether err is one the issuing command has
// already written a description of to stderr (a non-Solved search
// outcome), so callers printing errors themselves can skip it.
func AlreadyReported(err error) bool {
	_, ok := err.(*exitError)
	return ok
}
