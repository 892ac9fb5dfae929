package scenario

import (
	"testing"

	"github.com/san-kum/trajplan/internal/config"
)

func TestRegistrySeededFromPresets(t *testing.T) {
	r := NewRegistry()
	if len(r.Names()) == 0 {
		t.Fatal("expected registry to be seeded with presets")
	}
}

func TestRunKnownScenario(t *testing.T) {
	r := NewRegistry()
	result, err := r.Run("straight-line")
	if err != nil {
		t.Fatalf("expected straight-line to build cleanly, got %v", err)
	}
	if !result.Traj.IsValid() {
		t.Errorf("expected valid trajectory, got %v", result.Traj.Err())
	}
}

func TestRunUnknownScenario(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Run("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}

func TestBuildReportsInvalidConfig(t *testing.T) {
	cfg := &config.Config{
		Waypoints:       [][]float64{{0, 0}, {1, 0}},
		MaxVelocity:     []float64{1},
		MaxAcceleration: []float64{1, 1},
	}
	if _, err := Build(cfg); err == nil {
		t.Error("expected validation error to propagate from Build")
	}
}
