package batch

import (
	"context"
	"testing"

	"github.com/san-kum/trajplan/internal/scenario"
)

func TestRunAllNames(t *testing.T) {
	reg := scenario.NewRegistry()
	names := reg.Names()

	results := Run(context.Background(), reg, names)
	if len(results) != len(names) {
		t.Fatalf("expected %d results, got %d", len(names), len(results))
	}

	seen := make(map[string]bool)
	for _, r := range results {
		if r.Err != nil && r.Scenario == nil {
			// Some presets (e.g. repeated-waypoint) are expected to
			// build a degenerate but non-erroring trajectory; any real
			// error here should still report a name.
			if r.Name == "" {
				t.Error("errored result missing scenario name")
			}
		}
		seen[r.Name] = true
	}
	if len(seen) != len(names) {
		t.Errorf("expected %d distinct names in results, got %d", len(names), len(seen))
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	reg := scenario.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, reg, reg.Names())
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("expected cancelled context to error for %s", r.Name)
		}
	}
}
