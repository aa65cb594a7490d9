package task

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// Domain errors for task construction and validation.
var (
	// ErrMalformedTask indicates the task data is internally inconsistent,
	// e.g. a fact referencing a variable or value outside its domain.
	ErrMalformedTask = fmt.Errorf("%w: malformed task", searcherr.Input)

	// ErrInoperableAxioms indicates the axiom set cannot be stratified,
	// e.g. a derived variable depends on a higher layer than its own.
	ErrInoperableAxioms = fmt.Errorf("%w: axioms cannot be stratified", searcherr.Input)
)
