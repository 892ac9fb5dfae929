package tuning

import (
	"context"
	"testing"

	"github.com/san-kum/trajplan/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		Name:            "tuning-fixture",
		Waypoints:       [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		MaxVelocity:     []float64{1, 1, 1},
		MaxAcceleration: []float64{1, 1, 1},
		TimeStep:        config.DefaultTimeStep,
	}
}

func TestGridSearchFindsFasterBlend(t *testing.T) {
	search := NewGridSearch([]string{"max_deviation"}, [][]float64{{0, 0.05, 0.1, 0.2}})

	params, duration, err := search.Search(context.Background(), func(p map[string]float64) *config.Config {
		cfg := baseConfig()
		cfg.MaxDeviation = p["max_deviation"]
		return cfg
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if params == nil {
		t.Fatal("expected a best parameter set")
	}
	if duration <= 0 {
		t.Errorf("expected positive duration, got %f", duration)
	}
	if params["max_deviation"] == 0 {
		t.Error("expected blending to beat a sharp corner on this scenario")
	}
}

func TestGridSearchRespectsCancellation(t *testing.T) {
	search := NewGridSearch([]string{"max_deviation"}, [][]float64{{0, 0.1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	params, _, err := search.Search(ctx, func(p map[string]float64) *config.Config {
		cfg := baseConfig()
		cfg.MaxDeviation = p["max_deviation"]
		return cfg
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params != nil {
		t.Error("expected no result once the context is cancelled")
	}
}
