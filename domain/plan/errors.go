package plan

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// ErrInvalidPlan indicates a plan fails to replay to the goal under the
// task it was extracted from: an inapplicable operator, a mismatched
// cost, or a final state that does not satisfy the goal. This signals a
// broken invariant in plan extraction, not a user-facing input problem.
var ErrInvalidPlan = fmt.Errorf("%w: invalid plan", searcherr.Internal)
