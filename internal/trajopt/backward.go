package trajopt

import "math"

// integrateBackward decelerates from (p0, v0) at a0 until it meets the
// forward profile, splicing the two together in place. s1/s2 are the
// second-to-last/last profile indices; the window slides toward the
// path head whenever the backward arc has fallen behind s1. On success
// it rewrites t.profile in place; on failure it sets t.valid = false
// and stashes the partial backward arc in t.endTrajectory.
func (t *Trajectory) integrateBackward(p0, v0, a0 float64) {
	n := len(t.profile)
	if n < 2 {
		t.valid = false
		t.failure = ErrBackwardMiss
		return
	}

	s1idx, s2idx := n-2, n-1
	p, v, a := p0, v0, a0
	var slope float64
	var back []TrajectoryStep

	for s1idx != 0 || p >= 0 {
		if t.profile[s1idx].PathPos <= p {
			back = append([]TrajectoryStep{{PathPos: p, PathVel: v}}, back...)

			newV := v - t.timeStep*a
			newP := p - t.timeStep*0.5*(newV+back[0].PathVel)
			a = t.limits.aMax(newP, newV, -1)
			if newP != back[0].PathPos {
				slope = (back[0].PathVel - newV) / (back[0].PathPos - newP)
			}
			p, v = newP, newV

			if v < 0 {
				t.valid = false
				t.failure = ErrIntegrationDiverged
				t.endTrajectory = back
				return
			}
		} else if s1idx == 0 {
			break
		} else {
			s1idx--
			s2idx--
		}

		s1, s2 := t.profile[s1idx], t.profile[s2idx]
		startSlope := (s2.PathVel - s1.PathVel) / (s2.PathPos - s1.PathPos)
		denom := slope - startSlope
		if denom == 0 {
			continue
		}

		iPos := (s1.PathVel - v + slope*p - startSlope*s1.PathPos) / denom
		lo := math.Max(s1.PathPos, p) - eps
		hi := eps + math.Min(s2.PathPos, back[0].PathPos)
		if iPos >= lo && iPos <= hi {
			iVel := s1.PathVel + startSlope*(iPos-s1.PathPos)
			merged := append(append([]TrajectoryStep{}, t.profile[:s1idx+1]...), TrajectoryStep{PathPos: iPos, PathVel: iVel})
			t.profile = append(merged, back...)
			return
		}
	}

	t.valid = false
	t.failure = ErrBackwardMiss
	t.endTrajectory = back
}
