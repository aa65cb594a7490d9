package registry

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// ErrOutOfMemory indicates the registry's configured state ceiling was
// reached. The engine surfaces this as a RESOURCE error (spec.md §7)
// and exits with the out-of-memory code rather than growing unbounded.
var ErrOutOfMemory = fmt.Errorf("%w: registry state ceiling reached", searcherr.Resource)
