package pathgeom

import (
	"math"
	"testing"

	"github.com/san-kum/trajplan/internal/vecn"
)

func TestLinearSegment(t *testing.T) {
	seg := NewLinear(vecn.Vector{0, 0, 0}, vecn.Vector{1, 0, 0})

	if seg.Length != 1 {
		t.Fatalf("expected length 1, got %f", seg.Length)
	}
	mid := seg.Config(0.5)
	if math.Abs(mid[0]-0.5) > 1e-12 {
		t.Errorf("expected midpoint x=0.5, got %v", mid)
	}
	tan := seg.Tangent(0.5)
	if math.Abs(tan[0]-1) > 1e-12 {
		t.Errorf("expected unit tangent along x, got %v", tan)
	}
	for _, c := range seg.Curvature(0.5) {
		if c != 0 {
			t.Errorf("expected zero curvature, got %v", seg.Curvature(0.5))
		}
	}
	if len(seg.LocalSwitchingPoints()) != 0 {
		t.Error("linear segment should have no switching points")
	}
}

func TestCircularBlendGeometry(t *testing.T) {
	start := vecn.Vector{0, 0, 0}
	intersection := vecn.Vector{1, 0, 0}
	end := vecn.Vector{1, 1, 0}

	blend := NewCircularBlend(start, intersection, end, 0.1)

	if blend.Length <= 0 {
		t.Fatalf("expected positive blend length, got %f", blend.Length)
	}
	if math.Abs(blend.X.Norm()-1) > 1e-9 {
		t.Errorf("expected unit x basis, got norm %f", blend.X.Norm())
	}
	if math.Abs(blend.Y.Norm()-1) > 1e-9 {
		t.Errorf("expected unit y basis, got norm %f", blend.Y.Norm())
	}
	if math.Abs(blend.X.Dot(blend.Y)) > 1e-9 {
		t.Errorf("expected orthogonal x/y basis, got dot %f", blend.X.Dot(blend.Y))
	}

	// Config(0) must lie on the incoming edge (y = 0 up to rounding).
	entry := blend.Config(0)
	if math.Abs(entry[1]) > 1e-9 {
		t.Errorf("expected entry to sit on incoming edge (y=0), got %v", entry)
	}
}

func TestCircularBlendDegenerate(t *testing.T) {
	start := vecn.Vector{0, 0}
	intersection := vecn.Vector{1, 0}
	end := vecn.Vector{2, 0} // collinear

	blend := NewCircularBlend(start, intersection, end, 0.1)
	if blend.Length != 0 {
		t.Errorf("expected degenerate blend to have zero length, got %f", blend.Length)
	}
}

func TestCircularSwitchingPoints(t *testing.T) {
	start := vecn.Vector{0, 0, 0}
	intersection := vecn.Vector{1, 0, 0}
	end := vecn.Vector{1, 1, 0}

	blend := NewCircularBlend(start, intersection, end, 0.3)
	pts := blend.LocalSwitchingPoints()
	for _, s := range pts {
		if s <= 0 || s >= blend.Length {
			t.Errorf("switching point %f out of (0, length=%f)", s, blend.Length)
		}
	}
	for i := 1; i < len(pts); i++ {
		if pts[i] <= pts[i-1] {
			t.Errorf("switching points not strictly increasing: %v", pts)
		}
	}
}
