package config

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/planner-go/domain/config"
	"github.com/felixgeelhaar/planner-go/infrastructure/searchspec"
)

// Binder turns one RunConfig entry into the pieces application/engine
// needs to start a run: a parsed FeatureSpec tree ready for
// application/plugins to bind, the task source, and the resource
// limits. Grounded on the teacher's Builder, which likewise turned a
// declarative config document into the concrete values its engine
// constructor wanted instead of handing the raw document down.
type Binder struct {
	file *RunConfigFile
}

// NewBinder creates a binder over a loaded run-configuration document.
func NewBinder(file *RunConfigFile) *Binder {
	return &Binder{file: file}
}

// BoundRun is what one named entry in a run-configuration file
// resolves to.
type BoundRun struct {
	Name      string
	TaskFile  string // empty means stdin
	Spec      *config.FeatureSpec
	MaxTime   time.Duration
	MaxMemory int64 // KB, 0 = unbounded
	LogLevel  string
}

// Bind resolves every run in the document, parsing each search-spec
// string into a FeatureSpec tree.
func (b *Binder) Bind() ([]BoundRun, error) {
	runs := make([]BoundRun, 0, len(b.file.Runs))
	for _, rc := range b.file.Runs {
		bound, err := b.bindOne(rc)
		if err != nil {
			return nil, err
		}
		runs = append(runs, bound)
	}
	return runs, nil
}

// BindNamed resolves a single run by name, for a CLI invocation that
// wants one entry out of an iterated-search list.
func (b *Binder) BindNamed(name string) (BoundRun, error) {
	for _, rc := range b.file.Runs {
		if rc.Name == name {
			return b.bindOne(rc)
		}
	}
	return BoundRun{}, fmt.Errorf("%w: no run named %q", ErrInvalidFormat, name)
}

func (b *Binder) bindOne(rc RunConfig) (BoundRun, error) {
	spec, err := searchspec.Parse(rc.Search)
	if err != nil {
		return BoundRun{}, fmt.Errorf("run %q: %w", rc.Name, err)
	}
	return BoundRun{
		Name:      rc.Name,
		TaskFile:  rc.TaskFile,
		Spec:      spec,
		MaxTime:   rc.MaxTime.Duration(),
		MaxMemory: rc.MaxMemory,
		LogLevel:  rc.LogLevel,
	}, nil
}

// DefaultRunConfig returns a minimal single-run configuration: stdin
// task input, an unbounded blind search, no resource limits.
func DefaultRunConfig() *RunConfigFile {
	return &RunConfigFile{
		Runs: []RunConfig{
			{
				Name:   "default",
				Search: "astar(heuristic=g())",
			},
		},
	}
}
