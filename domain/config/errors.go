package config

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// Domain errors for search-spec binding.
var (
	// ErrWrongValueKind indicates an option's value has the wrong kind.
	ErrWrongValueKind = fmt.Errorf("%w: wrong value kind", searcherr.Config)

	// ErrValidationFailed indicates a FeatureSpec failed schema validation.
	ErrValidationFailed = fmt.Errorf("%w: search-spec validation failed", searcherr.Config)

	// ErrUnknownFeature indicates a feature name is not registered.
	ErrUnknownFeature = fmt.Errorf("%w: unknown feature", searcherr.Config)

	// ErrBuildFailed indicates building a component from its FeatureSpec failed.
	ErrBuildFailed = fmt.Errorf("%w: failed to build component from search-spec", searcherr.Config)
)
