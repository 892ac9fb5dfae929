// Package config loads and saves the YAML description of a trajectory
// generation run: waypoints, per-axis kinematic limits, and solver
// tuning knobs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajplan/internal/trajopt"
	"github.com/san-kum/trajplan/internal/vecn"
)

const (
	DefaultMaxDeviation = 0.001
	DefaultTimeStep     = trajopt.DefaultTimeStep
)

// Config is the on-disk description of a scenario: the waypoint
// polyline, per-axis kinematic limits, and blend/integration tuning.
type Config struct {
	Name            string      `yaml:"name"`
	Waypoints       [][]float64 `yaml:"waypoints"`
	MaxVelocity     []float64   `yaml:"max_velocity"`
	MaxAcceleration []float64   `yaml:"max_acceleration"`
	MaxDeviation    float64     `yaml:"max_deviation"`
	TimeStep        float64     `yaml:"time_step"`
}

// DefaultConfig returns a Config for the two-point straight-line
// scenario used as this package's smoke test.
func DefaultConfig() *Config {
	return &Config{
		Name:            "straight-line",
		Waypoints:       [][]float64{{0, 0, 0}, {1, 0, 0}},
		MaxVelocity:     []float64{1, 1, 1},
		MaxAcceleration: []float64{1, 1, 1},
		MaxDeviation:    DefaultMaxDeviation,
		TimeStep:        DefaultTimeStep,
	}
}

// Load reads and parses a Config from a YAML file, filling any
// unspecified field from DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks structural consistency: at least two waypoints, all
// of the same dimension, and limit vectors matching that dimension.
func (c *Config) Validate() error {
	if len(c.Waypoints) < 2 {
		return fmt.Errorf("need at least 2 waypoints, got %d", len(c.Waypoints))
	}
	dim := len(c.Waypoints[0])
	if dim == 0 {
		return fmt.Errorf("waypoints must have at least 1 dimension")
	}
	for i, w := range c.Waypoints {
		if len(w) != dim {
			return fmt.Errorf("waypoint %d has dimension %d, want %d", i, len(w), dim)
		}
	}
	if len(c.MaxVelocity) != dim {
		return fmt.Errorf("max_velocity has dimension %d, want %d", len(c.MaxVelocity), dim)
	}
	if len(c.MaxAcceleration) != dim {
		return fmt.Errorf("max_acceleration has dimension %d, want %d", len(c.MaxAcceleration), dim)
	}
	if c.MaxDeviation < 0 {
		return fmt.Errorf("max_deviation must be >= 0, got %f", c.MaxDeviation)
	}
	return nil
}

// WaypointVectors converts the raw [][]float64 into vecn.Vectors.
func (c *Config) WaypointVectors() []vecn.Vector {
	out := make([]vecn.Vector, len(c.Waypoints))
	for i, w := range c.Waypoints {
		out[i] = vecn.Vector(append([]float64(nil), w...))
	}
	return out
}

// MaxVelocityVector returns MaxVelocity as a vecn.Vector.
func (c *Config) MaxVelocityVector() vecn.Vector {
	return vecn.Vector(append([]float64(nil), c.MaxVelocity...))
}

// MaxAccelerationVector returns MaxAcceleration as a vecn.Vector.
func (c *Config) MaxAccelerationVector() vecn.Vector {
	return vecn.Vector(append([]float64(nil), c.MaxAcceleration...))
}
