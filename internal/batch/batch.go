// Package batch fans a set of scenario builds out across goroutines,
// one per scenario, and collects the results in input order.
package batch

import (
	"context"
	"sync"

	"github.com/san-kum/trajplan/internal/config"
	"github.com/san-kum/trajplan/internal/scenario"
)

// Result pairs a scenario name with its build outcome. Err is set if
// the build failed or context was cancelled before it started.
// Scenario is nil when the name was unknown, the config failed
// validation, or the context was cancelled; when the trajectory failed
// to solve, Scenario still holds the built path and invalid trajectory.
type Result struct {
	Name     string
	Scenario *scenario.Result
	Err      error
}

// Run builds every named scenario concurrently against reg and
// returns one Result per name, in the same order as names. A
// cancelled ctx short-circuits builds that have not yet started.
func Run(ctx context.Context, reg *scenario.Registry, names []string) []Result {
	results := make([]Result, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(idx int, scenarioName string) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[idx] = Result{Name: scenarioName, Err: err}
				return
			}

			res, err := reg.Run(scenarioName)
			results[idx] = Result{Name: scenarioName, Scenario: res, Err: err}
		}(i, name)
	}
	wg.Wait()

	return results
}

// RunConfigs is like Run but takes freshly-built Configs directly
// rather than resolving names through a Registry, for callers sweeping
// over generated variations rather than named presets.
func RunConfigs(ctx context.Context, configs []*config.Config) []Result {
	results := make([]Result, len(configs))

	var wg sync.WaitGroup
	for i, cfg := range configs {
		wg.Add(1)
		go func(idx int, c *config.Config) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[idx] = Result{Name: c.Name, Err: err}
				return
			}

			res, err := scenario.Build(c)
			results[idx] = Result{Name: c.Name, Scenario: res, Err: err}
		}(i, cfg)
	}
	wg.Wait()

	return results
}
