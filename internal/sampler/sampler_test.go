package sampler

import (
	"math"
	"testing"

	"github.com/san-kum/trajplan/internal/pathgeom"
	"github.com/san-kum/trajplan/internal/trajopt"
	"github.com/san-kum/trajplan/internal/vecn"
)

func wp(coords ...[]float64) []vecn.Vector {
	out := make([]vecn.Vector, len(coords))
	for i, c := range coords {
		out[i] = vecn.Vector(c)
	}
	return out
}

func uniform(n int, v float64) vecn.Vector {
	out := vecn.New(n)
	for i := range out {
		out[i] = v
	}
	return out
}

func buildStraightLine(t *testing.T) *trajopt.Trajectory {
	t.Helper()
	path := pathgeom.Build(wp([]float64{0, 0, 0}, []float64{1, 0, 0}), 0.1)
	traj := trajopt.New(path, uniform(3, 1), uniform(3, 1), 0.001)
	if !traj.IsValid() {
		t.Fatalf("expected valid trajectory, got %v", traj.Err())
	}
	return traj
}

func TestSampleBoundaryConditions(t *testing.T) {
	traj := buildStraightLine(t)
	cursor := NewCursor()

	pos0, vel0 := Sample(traj, cursor, 0)
	if pos0.Sub(vecn.Vector{0, 0, 0}).Norm() > 1e-6 {
		t.Errorf("expected position(0) = origin, got %v", pos0)
	}
	if vel0.Norm() > 1e-6 {
		t.Errorf("expected velocity(0) ~ 0, got %v", vel0)
	}

	cursor2 := NewCursor()
	posEnd, velEnd := Sample(traj, cursor2, traj.Duration())
	if posEnd.Sub(vecn.Vector{1, 0, 0}).Norm() > 1e-6 {
		t.Errorf("expected position(duration) = (1,0,0), got %v", posEnd)
	}
	if velEnd.Norm() > 1e-6 {
		t.Errorf("expected velocity(duration) ~ 0, got %v", velEnd)
	}
}

func TestSampleIdempotent(t *testing.T) {
	traj := buildStraightLine(t)
	cursor := NewCursor()

	p1, v1 := Sample(traj, cursor, 1.0)
	p2, v2 := Sample(traj, cursor, 1.0)
	if p1.Sub(p2).Norm() > 1e-12 || v1.Sub(v2).Norm() > 1e-12 {
		t.Errorf("repeated sampling at the same t diverged: (%v,%v) vs (%v,%v)", p1, v1, p2, v2)
	}
}

func TestSampleMonotoneMatchesRandomAccess(t *testing.T) {
	traj := buildStraightLine(t)

	monotone := NewCursor()
	times := []float64{0.1, 0.3, 0.5, 0.9, 1.5, 1.9}
	var monotonePos []vecn.Vector
	for _, ti := range times {
		pos, _ := Sample(traj, monotone, ti)
		monotonePos = append(monotonePos, pos)
	}

	for i, ti := range times {
		fresh := NewCursor()
		pos, _ := Sample(traj, fresh, ti)
		if pos.Sub(monotonePos[i]).Norm() > 1e-12 {
			t.Errorf("random-access sample at t=%f diverged from monotone scan: %v vs %v", ti, pos, monotonePos[i])
		}
	}
}

func TestSampleKinematicLimitRespected(t *testing.T) {
	traj := buildStraightLine(t)
	cursor := NewCursor()

	dt := 0.001
	for tt := 0.0; tt <= traj.Duration(); tt += dt {
		_, vel := Sample(traj, cursor, tt)
		for i := range vel {
			if math.Abs(vel[i]) > 1+1e-3 {
				t.Fatalf("velocity[%d]=%f exceeds limit at t=%f", i, vel[i], tt)
			}
		}
	}
}
