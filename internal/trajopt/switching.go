package trajopt

import (
	"math"

	"github.com/san-kum/trajplan/internal/pathgeom"
)

// switchCandidate is a discovered switching point together with the
// path accelerations on either side of it: Before seeds the backward
// integration that ends at the point, After seeds the forward
// integration that resumes from it.
type switchCandidate struct {
	Pos    float64
	Vel    float64
	Before float64
	After  float64
}

// nextDiscontinuity returns the first curvature-discontinuous switching
// point strictly beyond pathPos, skipping continuous (limit-curve
// minimum) entries. Path.GetNextSwitchingPoint synthesises a
// discontinuous sentinel at path.Length when none remain, so this
// always terminates.
func (t *Trajectory) nextDiscontinuity(pathPos float64) pathgeom.SwitchingPoint {
	sp := t.path.GetNextSwitchingPoint(pathPos)
	for !sp.Discontinuous {
		sp = t.path.GetNextSwitchingPoint(sp.Pos)
	}
	return sp
}

// getNextAccelerationSwitchingPoint scans forward through the path's
// switching points looking for one at which the acceleration-limit
// curve has a local minimum, or a curvature discontinuity at which the
// feasible acceleration range collapses to a point.
func (t *Trajectory) getNextAccelerationSwitchingPoint(pathPos float64) (switchCandidate, bool) {
	pos := pathPos
	for {
		sp := t.path.GetNextSwitchingPoint(pos)
		if sp.Pos >= t.path.Length-eps {
			return switchCandidate{}, false
		}

		if sp.Discontinuous {
			vBefore := t.limits.vMaxAcc(sp.Pos - eps)
			vAfter := t.limits.vMaxAcc(sp.Pos + eps)
			v := math.Min(vBefore, vAfter)
			before := t.limits.aMax(sp.Pos-eps, v, -1)
			after := t.limits.aMax(sp.Pos+eps, v, +1)

			enteringFeasible := vBefore > vAfter || t.limits.phaseSlope(sp.Pos-eps, v, -1) > t.limits.vMaxAccDeriv(sp.Pos-2*eps)
			leavingFeasible := vBefore < vAfter || t.limits.phaseSlope(sp.Pos+eps, v, +1) < t.limits.vMaxAccDeriv(sp.Pos+2*eps)
			if enteringFeasible && leavingFeasible {
				return switchCandidate{Pos: sp.Pos, Vel: v, Before: before, After: after}, true
			}
		} else {
			if t.limits.vMaxAccDeriv(sp.Pos-eps) < 0 && t.limits.vMaxAccDeriv(sp.Pos+eps) > 0 {
				return switchCandidate{Pos: sp.Pos, Vel: t.limits.vMaxAcc(sp.Pos)}, true
			}
		}

		pos = sp.Pos
	}
}

// getNextVelocitySwitchingPoint locates the next arc length at which the
// velocity-limit curve stops being a locally reachable maximum: a
// coarse forward scan brackets the crossing of the phaseSlope/vMaxVel'
// predicate, then bisection refines it to accuracy.
func (t *Trajectory) getNextVelocitySwitchingPoint(pathPos float64) (switchCandidate, bool) {
	const stepSize = 0.001
	const accuracy = 1e-6

	pred := func(p float64) bool {
		return t.limits.phaseSlope(p, t.limits.vMaxVel(p), -1) >= t.limits.vMaxVelDeriv(p)
	}

	p := pathPos
	if p < 0 {
		p = 0
	}
	prev := p
	seenTrue := false
	for {
		cur := pred(p)
		if cur {
			seenTrue = true
		}
		if seenTrue && !cur {
			break
		}
		if p >= t.path.Length {
			return switchCandidate{}, false
		}
		prev = p
		p += stepSize
	}

	lo, hi := prev, p
	for hi-lo > accuracy {
		mid := (lo + hi) / 2
		if pred(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	beforeVel := t.limits.vMaxVel(lo)
	afterVel := t.limits.vMaxVel(hi)
	return switchCandidate{
		Pos:    hi,
		Vel:    afterVel,
		Before: t.limits.aMax(lo, beforeVel, -1),
		After:  t.limits.aMax(hi, afterVel, 1),
	}, true
}

// nextSwitchingPoint combines the acceleration- and velocity-limit
// candidate searches and returns whichever occurs first.
func (t *Trajectory) nextSwitchingPoint(pathPos float64) (switchCandidate, bool) {
	accPos := pathPos
	var accCand switchCandidate
	accOK := false
	for {
		cand, ok := t.getNextAccelerationSwitchingPoint(accPos)
		if !ok {
			break
		}
		if cand.Vel <= t.limits.vMaxVel(cand.Pos) {
			accCand, accOK = cand, true
			break
		}
		accPos = cand.Pos
	}

	velPos := pathPos
	var velCand switchCandidate
	velOK := false
	for {
		cand, ok := t.getNextVelocitySwitchingPoint(velPos)
		if !ok {
			break
		}
		if cand.Vel <= t.limits.vMaxAcc(cand.Pos)+eps {
			velCand, velOK = cand, true
			break
		}
		if accOK && cand.Pos > accCand.Pos {
			break
		}
		velPos = cand.Pos
	}

	switch {
	case accOK && velOK:
		if accCand.Pos <= velCand.Pos {
			return accCand, true
		}
		return velCand, true
	case accOK:
		return accCand, true
	case velOK:
		return velCand, true
	default:
		return switchCandidate{}, false
	}
}
