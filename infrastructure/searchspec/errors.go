package searchspec

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// ErrSyntax indicates the search-spec text is not well-formed. The
// CLI (interfaces/cli) surfaces this as a SEARCH_INPUT_ERROR exit code
// (spec.md §6).
var ErrSyntax = fmt.Errorf("%w: search-spec syntax error", searcherr.Input)
