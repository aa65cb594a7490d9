package search

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// Domain errors for the SearchNode status machine.
var (
	// ErrIllegalTransition indicates a status transition was attempted
	// from a status that does not permit it. Per spec, this is always a
	// programming error in the caller (the engine or open list), never a
	// recoverable runtime condition, and callers should treat it as fatal.
	ErrIllegalTransition = fmt.Errorf("%w: illegal search node status transition", searcherr.Internal)
)
