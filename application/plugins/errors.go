package plugins

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// ErrFeatureExists indicates a name was already registered for that kind.
var ErrFeatureExists = errors.New("feature already registered")

// ErrMissingArgument indicates a required FeatureSpec argument was absent.
var ErrMissingArgument = fmt.Errorf("%w: missing required argument", searcherr.Config)
