package config

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/infrastructure/searchspec"
)

// RunConfig describes one named search run: which task to read, which
// search-spec to bind it against, and the resource limits to enforce.
// It is the YAML/JSON-loadable counterpart to passing a search-spec
// inline on the CLI (spec.md §6 "Configuration grammar contract").
type RunConfig struct {
	// Name identifies this run, e.g. for the plan output file suffix
	// an iterated search produces.
	Name string `yaml:"name" json:"name"`
	// TaskFile is the task input path. Empty means read from stdin.
	TaskFile string `yaml:"task_file,omitempty" json:"task_file,omitempty"`
	// Search is a search-spec string in the infrastructure/searchspec
	// grammar, e.g. "astar(heuristic=sum([g(),weight(h(),2)]))".
	Search string `yaml:"search" json:"search"`
	// MaxTime bounds the run's wall-clock duration (spec.md §5
	// max_time). Zero means unbounded.
	MaxTime Duration `yaml:"max_time,omitempty" json:"max_time,omitempty"`
	// MaxMemory bounds peak memory in kilobytes. Zero means unbounded.
	MaxMemory int64 `yaml:"max_memory,omitempty" json:"max_memory,omitempty"`
	// LogLevel overrides the default bolt log level for this run.
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// RunConfigFile is the top-level document a YAML run-configuration
// file unmarshals into: a named list of runs, useful for an iterated
// search over several specs without re-invoking the CLI per spec.
type RunConfigFile struct {
	Runs []RunConfig `yaml:"runs" json:"runs"`
}

// Validate checks structural well-formedness: at least one run, every
// run named and carrying a syntactically valid search-spec, and no two
// runs sharing a name. It does not bind the spec against a feature
// registry — that happens later in application/plugins, once the
// caller knows which builders are registered.
func (f *RunConfigFile) Validate() error {
	if len(f.Runs) == 0 {
		return ErrEmptyRunConfig
	}

	seen := make(map[string]bool, len(f.Runs))
	for i, run := range f.Runs {
		if run.Name == "" {
			return fmt.Errorf("%w: run %d has no name", ErrInvalidFormat, i)
		}
		if seen[run.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateRunName, run.Name)
		}
		seen[run.Name] = true

		if run.Search == "" {
			return fmt.Errorf("%w: run %q has no search-spec", ErrInvalidFormat, run.Name)
		}
		if _, err := searchspec.Parse(run.Search); err != nil {
			return fmt.Errorf("%w: run %q: %v", ErrInvalidFormat, run.Name, err)
		}
	}
	return nil
}
