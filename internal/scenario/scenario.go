// Package scenario is the named-configuration registry that ties
// together path construction and trajectory solving: it turns a
// config.Config into a built pathgeom.Path and a solved
// trajopt.Trajectory.
package scenario

import (
	"fmt"

	"github.com/san-kum/trajplan/internal/config"
	"github.com/san-kum/trajplan/internal/pathgeom"
	"github.com/san-kum/trajplan/internal/trajopt"
)

// Result bundles the geometric path with its solved trajectory.
type Result struct {
	Config *config.Config
	Path   *pathgeom.Path
	Traj   *trajopt.Trajectory
}

// Registry maps scenario names to configurations. It is seeded from
// config.Presets but callers may register their own via Add.
type Registry struct {
	configs map[string]*config.Config
}

// NewRegistry returns a Registry pre-populated with every built-in
// preset.
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[string]*config.Config)}
	for name, cfg := range config.Presets {
		r.configs[name] = cfg
	}
	return r
}

// Add registers or overwrites a named configuration.
func (r *Registry) Add(name string, cfg *config.Config) {
	r.configs[name] = cfg
}

// Get returns the configuration registered under name.
func (r *Registry) Get(name string) (*config.Config, error) {
	cfg, ok := r.configs[name]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown scenario %q", name)
	}
	return cfg, nil
}

// Names lists every registered scenario name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	return names
}

// Run resolves name and builds it.
func (r *Registry) Run(name string) (*Result, error) {
	cfg, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return Build(cfg)
}

// Build constructs the geometric path and solves the trajectory for
// cfg, returning an error if cfg fails validation.
func Build(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	path := pathgeom.Build(cfg.WaypointVectors(), cfg.MaxDeviation)
	traj := trajopt.New(path, cfg.MaxVelocityVector(), cfg.MaxAccelerationVector(), cfg.TimeStep)

	result := &Result{Config: cfg, Path: path, Traj: traj}
	if !traj.IsValid() {
		return result, fmt.Errorf("scenario: %s: %w", cfg.Name, traj.Err())
	}
	return result, nil
}
