package trajopt

import (
	"math"

	"github.com/san-kum/trajplan/internal/pathgeom"
	"github.com/san-kum/trajplan/internal/vecn"
)

// eps is the tolerance used throughout the phase-plane solver: for
// discontinuity offsets, bisection termination, and the backward/forward
// intersection window. Numerical derivatives use derivEps.
const eps = 1e-6

// derivEps is the step used for central-difference derivatives of the
// acceleration-limit curve.
const derivEps = 1e-6

// limits evaluates the phase-plane constraint curves derived from a
// Path and a pair of per-axis velocity/acceleration bounds. It carries
// no mutable state; every method is a pure function of (s, v).
type limits struct {
	path   *pathgeom.Path
	maxVel vecn.Vector
	maxAcc vecn.Vector
}

func newLimits(path *pathgeom.Path, maxVel, maxAcc vecn.Vector) *limits {
	return &limits{path: path, maxVel: maxVel, maxAcc: maxAcc}
}

// aMax returns the maximum (sign > 0) or minimum (sign < 0) feasible
// path acceleration at (s, v).
func (l *limits) aMax(s, v float64, sign int) float64 {
	factor := 1.0
	if sign < 0 {
		factor = -1.0
	}
	t := l.path.Tangent(s)
	c := l.path.Curvature(s)

	best := math.Inf(1)
	for i := range t {
		if t[i] == 0 {
			continue
		}
		cand := l.maxAcc[i]/math.Abs(t[i]) - factor*c[i]*v*v/t[i]
		if cand < best {
			best = cand
		}
	}
	return factor * best
}

// vMaxVel returns the velocity-limit curve value at s.
func (l *limits) vMaxVel(s float64) float64 {
	v, _ := l.vMaxVelAxis(s)
	return v
}

// vMaxVelAxis returns the velocity-limit curve value at s together with
// the axis that achieves the minimum.
func (l *limits) vMaxVelAxis(s float64) (float64, int) {
	t := l.path.Tangent(s)
	best := math.Inf(1)
	axis := -1
	for i := range t {
		if t[i] == 0 {
			continue
		}
		cand := l.maxVel[i] / math.Abs(t[i])
		if cand < best {
			best = cand
			axis = i
		}
	}
	return best, axis
}

// vMaxAcc returns the acceleration-limit curve value at s.
func (l *limits) vMaxAcc(s float64) float64 {
	t := l.path.Tangent(s)
	c := l.path.Curvature(s)

	best := math.Inf(1)
	found := false
	for i := range t {
		if t[i] == 0 {
			if c[i] != 0 {
				cand := math.Sqrt(l.maxAcc[i] / math.Abs(c[i]))
				if cand < best {
					best = cand
					found = true
				}
			}
			continue
		}
		for j := i + 1; j < len(t); j++ {
			if t[j] == 0 {
				continue
			}
			aij := c[i]/t[i] - c[j]/t[j]
			if aij == 0 {
				continue
			}
			cand := math.Sqrt((l.maxAcc[i]/math.Abs(t[i]) + l.maxAcc[j]/math.Abs(t[j])) / math.Abs(aij))
			if cand < best {
				best = cand
				found = true
			}
		}
	}
	if !found {
		return math.Inf(1)
	}
	return best
}

// phaseSlope is dv/ds along a trajectory integrated at the given
// acceleration sign: a_max(s, v, sign) / v.
func (l *limits) phaseSlope(s, v float64, sign int) float64 {
	return l.aMax(s, v, sign) / v
}

// vMaxAccDeriv is the central-difference derivative of the
// acceleration-limit curve.
func (l *limits) vMaxAccDeriv(s float64) float64 {
	return (l.vMaxAcc(s+derivEps) - l.vMaxAcc(s-derivEps)) / (2 * derivEps)
}

// vMaxVelDeriv is the closed-form derivative of the velocity-limit
// curve, expressed via the tangent/curvature of the axis that achieves
// the minimum at s.
func (l *limits) vMaxVelDeriv(s float64) float64 {
	_, k := l.vMaxVelAxis(s)
	if k < 0 {
		return 0
	}
	t := l.path.Tangent(s)
	c := l.path.Curvature(s)
	return -(l.maxVel[k] * c[k]) / (t[k] * math.Abs(t[k]))
}
