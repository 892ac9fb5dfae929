package pathgeom

import (
	"math"
	"testing"

	"github.com/san-kum/trajplan/internal/vecn"
)

func wp(coords ...[]float64) []vecn.Vector {
	out := make([]vecn.Vector, len(coords))
	for i, c := range coords {
		out[i] = vecn.Vector(c)
	}
	return out
}

func TestEmptyPath(t *testing.T) {
	p := Build(wp([]float64{0, 0, 0}), 0.1)
	if p.Length != 0 {
		t.Errorf("expected empty path for single waypoint, got length %f", p.Length)
	}
}

func TestStraightLinePath(t *testing.T) {
	p := Build(wp([]float64{0, 0, 0}, []float64{1, 0, 0}), 0.1)
	if math.Abs(p.Length-1) > 1e-12 {
		t.Fatalf("expected length 1, got %f", p.Length)
	}
	if len(p.GetSwitchingPoints()) != 0 {
		t.Errorf("expected no switching points on a single segment, got %v", p.GetSwitchingPoints())
	}
}

func TestRightAngleZeroDeviation(t *testing.T) {
	p := Build(wp([]float64{0, 0, 0}, []float64{1, 0, 0}, []float64{1, 1, 0}), 0)

	if len(p.Segments) != 2 {
		t.Fatalf("expected 2 linear segments, got %d", len(p.Segments))
	}
	if math.Abs(p.Length-2) > 1e-9 {
		t.Errorf("expected total length 2, got %f", p.Length)
	}

	sps := p.GetSwitchingPoints()
	if len(sps) != 1 || !sps[0].Discontinuous {
		t.Fatalf("expected one discontinuous switching point at the corner, got %v", sps)
	}
	if math.Abs(sps[0].Pos-1) > 1e-9 {
		t.Errorf("expected corner switching point at s=1, got %f", sps[0].Pos)
	}
}

func TestRightAngleBlended(t *testing.T) {
	p := Build(wp([]float64{0, 0, 0}, []float64{1, 0, 0}, []float64{1, 1, 0}), 0.1)

	if len(p.Segments) != 3 {
		t.Fatalf("expected linear-blend-linear, got %d segments", len(p.Segments))
	}
	if p.Segments[0].Kind != KindLinear || p.Segments[1].Kind != KindCircular || p.Segments[2].Kind != KindLinear {
		t.Fatalf("unexpected segment kinds: %v", []Kind{p.Segments[0].Kind, p.Segments[1].Kind, p.Segments[2].Kind})
	}

	checkC0C1Continuity(t, p)
	checkLengthConsistency(t, p)
	checkSwitchingPointOrdering(t, p)
}

func TestDegenerateCollinearBlend(t *testing.T) {
	p := Build(wp([]float64{0, 0}, []float64{1, 0}, []float64{2, 0}), 0.1)

	// Collinear waypoints degenerate to two concatenated linear segments;
	// the zero-length blend contributes no arc length.
	if math.Abs(p.Length-2) > 1e-9 {
		t.Errorf("expected total length 2, got %f", p.Length)
	}
	end := p.Config(p.Length)
	if math.Abs(end[0]-2) > 1e-6 {
		t.Errorf("expected path to end at (2,0), got %v", end)
	}
}

func TestZigZagContinuity(t *testing.T) {
	p := Build(wp(
		[]float64{0, 0, 0},
		[]float64{0, 0.2, 1},
		[]float64{0, 3, 0.5},
		[]float64{1.1, 2, 0},
		[]float64{1, 0, 0},
		[]float64{0, 1, 0},
		[]float64{0, 0, 1},
	), 0.001)

	checkC0C1Continuity(t, p)
	checkLengthConsistency(t, p)
	checkSwitchingPointOrdering(t, p)
}

func checkC0C1Continuity(t *testing.T, p *Path) {
	t.Helper()
	for i := 1; i < len(p.Segments); i++ {
		prev, cur := p.Segments[i-1], p.Segments[i]
		a := prev.Config(prev.Length)
		b := cur.Config(0)
		if a.Sub(b).Norm() > 1e-9 {
			t.Errorf("C0 discontinuity at boundary %d: %v vs %v", i, a, b)
		}
		ta := prev.Tangent(prev.Length)
		tb := cur.Tangent(0)
		if ta.Sub(tb).Norm() > 1e-9 {
			t.Errorf("C1 discontinuity at boundary %d: %v vs %v", i, ta, tb)
		}
	}
}

func checkLengthConsistency(t *testing.T, p *Path) {
	t.Helper()
	sum := 0.0
	for _, seg := range p.Segments {
		sum += seg.Length
	}
	if math.Abs(sum-p.Length) > 1e-9 {
		t.Errorf("sum of segment lengths %f != path length %f", sum, p.Length)
	}
}

func checkSwitchingPointOrdering(t *testing.T, p *Path) {
	t.Helper()
	sps := p.GetSwitchingPoints()
	for i, sp := range sps {
		if sp.Pos <= 0 || sp.Pos >= p.Length {
			t.Errorf("switching point %d = %f out of (0, %f)", i, sp.Pos, p.Length)
		}
		if i > 0 && sp.Pos <= sps[i-1].Pos {
			t.Errorf("switching points not strictly increasing at %d: %v", i, sps)
		}
	}
}
