package config

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// Sentinel errors for loading a YAML/JSON run-configuration file.
// domain/config's errors.go covers option-binding failures once a
// FeatureSpec is in hand; these cover getting one there in the first
// place.
var (
	ErrConfigNotFound    = fmt.Errorf("%w: run-configuration file not found", searcherr.Config)
	ErrInvalidFormat     = fmt.Errorf("%w: run-configuration is not well-formed", searcherr.Config)
	ErrUnsupportedFormat = fmt.Errorf("%w: unrecognized run-configuration file extension", searcherr.Config)
	ErrMissingEnvVar     = fmt.Errorf("%w: required environment variable not set", searcherr.Config)
	ErrEmptyRunConfig    = fmt.Errorf("%w: run-configuration file defines no runs", searcherr.Config)
	ErrDuplicateRunName  = fmt.Errorf("%w: duplicate run name", searcherr.Config)
)
