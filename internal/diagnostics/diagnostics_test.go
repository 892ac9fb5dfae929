package diagnostics

import (
	"strings"
	"testing"

	"github.com/san-kum/trajplan/internal/pathgeom"
	"github.com/san-kum/trajplan/internal/trajopt"
	"github.com/san-kum/trajplan/internal/vecn"
)

func buildTestTrajectory(t *testing.T) *trajopt.Trajectory {
	t.Helper()
	path := pathgeom.Build([]vecn.Vector{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, 0.1)
	traj := trajopt.New(path, vecn.Vector{1, 1, 1}, vecn.Vector{1, 1, 1}, 0.001)
	if !traj.IsValid() {
		t.Fatalf("expected valid trajectory, got %v", traj.Err())
	}
	return traj
}

func TestPathProjectionProducesNonEmptyCanvas(t *testing.T) {
	traj := buildTestTrajectory(t)
	canvas, err := PathProjection(traj.Path(), 0, 1, 40, 15, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	litCells := 0
	for _, row := range canvas.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				litCells++
			}
		}
	}
	if litCells == 0 {
		t.Error("expected at least one lit cell in the path projection")
	}
}

func TestPathProjectionRejectsBadAxis(t *testing.T) {
	traj := buildTestTrajectory(t)
	if _, err := PathProjection(traj.Path(), 0, 5, 40, 15, 100); err == nil {
		t.Error("expected an error for an out-of-range axis index")
	}
}

func TestCanvasToSVGProducesValidHeader(t *testing.T) {
	traj := buildTestTrajectory(t)
	canvas, err := PathProjection(traj.Path(), 0, 1, 40, 15, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svg := CanvasToSVG(canvas, 4)
	if !strings.Contains(svg, "<svg") {
		t.Error("expected SVG output to contain an <svg> tag")
	}
}

func TestLimitCurvesNonEmpty(t *testing.T) {
	traj := buildTestTrajectory(t)
	vel, acc := LimitCurves(traj, 50, 60, 10)
	if vel == "" || acc == "" {
		t.Error("expected non-empty limit curve plots")
	}
}

func TestPathVelocityProfileNonEmpty(t *testing.T) {
	traj := buildTestTrajectory(t)
	plot := PathVelocityProfile(traj, 60, 10)
	if plot == "" {
		t.Error("expected non-empty velocity profile plot")
	}
}

func TestCanvasHighlightOverridesBraillePattern(t *testing.T) {
	canvas := NewCanvas(10, 10)
	canvas.Set(4, 4)
	canvas.Highlight(4, 4, '●')

	rendered := []rune(canvas.String())
	found := false
	for _, r := range rendered {
		if r == '●' {
			found = true
		}
		if r == 0x2800+0x1 {
			t.Error("expected the highlighted cell's braille pattern to be overridden")
		}
	}
	if !found {
		t.Error("expected the highlight mark to appear in the rendered canvas")
	}
}

func TestCanvasHighlightOutOfBoundsIsNoop(t *testing.T) {
	canvas := NewCanvas(5, 5)
	canvas.Highlight(-1, -1, '●')
	canvas.Highlight(1000, 1000, '●')
	if strings.Contains(canvas.String(), "●") {
		t.Error("expected out-of-bounds highlights to be ignored")
	}
}
