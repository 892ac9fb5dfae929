// Package trajopt implements the Kunz & Stilman phase-plane solver: it
// integrates a geometric path forward at maximum acceleration and
// backward at maximum deceleration, stitching the two arcs together at
// discovered switching points to produce a time-optimal, kinematically
// bounded piecewise-parabolic profile.
package trajopt

import (
	"fmt"

	"github.com/san-kum/trajplan/internal/pathgeom"
	"github.com/san-kum/trajplan/internal/vecn"
)

// DefaultTimeStep is the default phase-plane integration step.
const DefaultTimeStep = 0.001

// TrajectoryStep is one sample of the phase-plane profile: an
// arc-length/path-velocity pair, with wall-clock Time filled in once
// the whole profile has been integrated.
type TrajectoryStep struct {
	PathPos float64
	PathVel float64
	Time    float64
}

// Trajectory is a time-optimal phase-plane profile over a Path, bound
// by per-axis velocity and acceleration limits. It is built once and
// immutable thereafter; sampling is performed by the sampler package
// against an externally held cursor.
type Trajectory struct {
	path     *pathgeom.Path
	limits   *limits
	timeStep float64

	maxVelocity     vecn.Vector
	maxAcceleration vecn.Vector

	valid         bool
	failure       error
	profile       []TrajectoryStep
	endTrajectory []TrajectoryStep
}

// New builds a Trajectory over path bounded by maxVelocity and
// maxAcceleration (both dimensioned like the path's waypoints), using
// timeStep for phase-plane integration. A non-positive timeStep falls
// back to DefaultTimeStep.
func New(path *pathgeom.Path, maxVelocity, maxAcceleration vecn.Vector, timeStep float64) *Trajectory {
	if timeStep <= 0 {
		timeStep = DefaultTimeStep
	}
	t := &Trajectory{
		path:            path,
		limits:          newLimits(path, maxVelocity, maxAcceleration),
		timeStep:        timeStep,
		maxVelocity:     maxVelocity,
		maxAcceleration: maxAcceleration,
	}
	t.solve()
	return t
}

func (t *Trajectory) solve() {
	if t.path.Length == 0 {
		t.valid = true
		t.profile = []TrajectoryStep{{PathPos: 0, PathVel: 0, Time: 0}}
		return
	}

	t.valid = true
	t.profile = []TrajectoryStep{{PathPos: 0, PathVel: 0}}
	a := t.limits.aMax(0, 0, 1)

	for {
		reachedEnd := t.integrateForward(a)
		if !t.valid {
			return
		}
		if reachedEnd {
			break
		}

		last := t.profile[len(t.profile)-1]
		cand, ok := t.nextSwitchingPoint(last.PathPos)
		if !ok {
			break
		}

		t.integrateBackward(cand.Pos, cand.Vel, cand.Before)
		if !t.valid {
			return
		}

		a = cand.After
	}

	if t.valid {
		aFinal := t.limits.aMax(t.path.Length, 0, -1)
		t.integrateBackward(t.path.Length, 0, aFinal)
	}
	if !t.valid {
		return
	}

	t.computeTimes()
}

func (t *Trajectory) computeTimes() {
	t.profile[0].Time = 0
	for k := 1; k < len(t.profile); k++ {
		prev, cur := t.profile[k-1], t.profile[k]
		avgVel := (cur.PathVel + prev.PathVel) / 2
		if avgVel == 0 {
			t.profile[k].Time = prev.Time
			continue
		}
		t.profile[k].Time = prev.Time + (cur.PathPos-prev.PathPos)/avgVel
	}
}

// IsValid reports whether integration completed without diverging.
func (t *Trajectory) IsValid() bool {
	return t.valid
}

// Err returns the failure reason when !IsValid, wrapped with the
// phase-plane position at which it occurred; nil otherwise.
func (t *Trajectory) Err() error {
	if t.valid || t.failure == nil {
		return nil
	}
	last := TrajectoryStep{}
	if len(t.endTrajectory) > 0 {
		last = t.endTrajectory[0]
	} else if len(t.profile) > 0 {
		last = t.profile[len(t.profile)-1]
	}
	return &SolveError{PathPos: last.PathPos, PathVel: last.PathVel, Wrapped: t.failure}
}

// Duration returns the total time spanned by the profile. Undefined
// (returns 0) when !IsValid.
func (t *Trajectory) Duration() float64 {
	if !t.valid || len(t.profile) == 0 {
		return 0
	}
	return t.profile[len(t.profile)-1].Time
}

// Path returns the underlying geometric path.
func (t *Trajectory) Path() *pathgeom.Path {
	return t.path
}

// Profile returns a read-only view of the timed phase-plane steps.
func (t *Trajectory) Profile() []TrajectoryStep {
	return t.profile
}

// EndTrajectory returns the diagnostic backward-integration tail
// retained when construction failed. Empty when IsValid.
func (t *Trajectory) EndTrajectory() []TrajectoryStep {
	return t.endTrajectory
}

// VMaxVel exposes the velocity-limit curve at arc length s, for
// diagnostic plotting.
func (t *Trajectory) VMaxVel(s float64) float64 {
	return t.limits.vMaxVel(s)
}

// VMaxAcc exposes the acceleration-limit curve at arc length s, for
// diagnostic plotting.
func (t *Trajectory) VMaxAcc(s float64) float64 {
	return t.limits.vMaxAcc(s)
}

func (t *Trajectory) String() string {
	if !t.valid {
		return fmt.Sprintf("Trajectory{invalid: %v}", t.Err())
	}
	return fmt.Sprintf("Trajectory{steps=%d, duration=%.4fs}", len(t.profile), t.Duration())
}
