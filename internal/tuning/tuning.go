// Package tuning searches a parameter grid (typically max_deviation
// and time_step candidates) for the configuration that minimizes
// trajectory duration while still solving validly.
package tuning

import (
	"context"
	"math"

	"github.com/san-kum/trajplan/internal/config"
	"github.com/san-kum/trajplan/internal/scenario"
)

// GridSearch exhaustively evaluates every combination of paramNames'
// candidate values.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

// NewGridSearch builds a search over len(params) parameters, each with
// its own candidate list in ranges (ranges[i] corresponds to
// params[i]).
func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search evaluates buildConfig at every grid point, solves the
// resulting scenario, and returns the parameter combination that
// yields the shortest valid trajectory duration. Invalid or erroring
// combinations are skipped. Returns a nil map if no combination
// solved validly.
func (g *GridSearch) Search(ctx context.Context, buildConfig func(params map[string]float64) *config.Config) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	g.searchRecursive(ctx, 0, make(map[string]float64), buildConfig, &best, &bestParams)

	if bestParams == nil {
		return nil, 0, nil
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	buildConfig func(map[string]float64) *config.Config,
	best *float64,
	bestParams *map[string]float64,
) {
	if ctx.Err() != nil {
		return
	}

	if depth == len(g.paramNames) {
		cfg := buildConfig(current)
		result, err := scenario.Build(cfg)
		if err != nil || result == nil || !result.Traj.IsValid() {
			return
		}

		duration := result.Traj.Duration()
		if duration < *best {
			*best = duration
			params := make(map[string]float64, len(current))
			for k, v := range current {
				params[k] = v
			}
			*bestParams = params
		}
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[paramName] = val
		g.searchRecursive(ctx, depth+1, next, buildConfig, best, bestParams)
	}
}
