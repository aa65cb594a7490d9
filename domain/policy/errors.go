package policy

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// Domain errors for budget enforcement.
var (
	// ErrBudgetExceeded indicates a named budget's limit has been exceeded.
	ErrBudgetExceeded = fmt.Errorf("%w: budget exceeded", searcherr.Resource)
)
