package trajopt

// integrateForward advances the profile from its last step using
// acceleration a, switching to a itself only via the caller-supplied
// seed; the loop recomputes a from the limit curves after every step.
// It returns true when the path end (or a fatal divergence) is
// reached, false when it hands off to a backward integration at a
// newly discovered switching point.
func (t *Trajectory) integrateForward(a float64) bool {
	last := t.profile[len(t.profile)-1]
	p, v := last.PathPos, last.PathVel

	for {
		nextDisc := t.nextDiscontinuity(p)

		oldP, oldV := p, v
		v = v + t.timeStep*a
		p = p + t.timeStep*0.5*(oldV+v)

		if p >= nextDisc.Pos && oldP < nextDisc.Pos {
			if p != oldP {
				v = oldV + (nextDisc.Pos-oldP)*(v-oldV)/(p-oldP)
			}
			p = nextDisc.Pos
		}

		if p > t.path.Length {
			t.profile = append(t.profile, TrajectoryStep{PathPos: p, PathVel: v})
			return true
		}
		if v < 0 {
			t.valid = false
			t.failure = ErrIntegrationDiverged
			return true
		}

		if v > t.limits.vMaxVel(p) && t.limits.phaseSlope(oldP, t.limits.vMaxVel(oldP), -1) <= t.limits.vMaxVelDeriv(oldP) {
			v = t.limits.vMaxVel(p)
		}

		t.profile = append(t.profile, TrajectoryStep{PathPos: p, PathVel: v})
		a = t.limits.aMax(p, v, 1)

		if v > t.limits.vMaxAcc(p) || v > t.limits.vMaxVel(p) {
			afterPos, afterVel := p, v
			t.profile = t.profile[:len(t.profile)-1]
			tail := t.profile[len(t.profile)-1]
			beforePos, beforeVel := tail.PathPos, tail.PathVel

			for afterPos-beforePos > eps {
				m := (beforePos + afterPos) / 2
				mV := (beforeVel + afterVel) / 2
				if mV > t.limits.vMaxVel(m) && t.limits.phaseSlope(beforePos, t.limits.vMaxVel(beforePos), -1) <= t.limits.vMaxVelDeriv(beforePos) {
					mV = t.limits.vMaxVel(m)
				}
				if mV > t.limits.vMaxAcc(m) || mV > t.limits.vMaxVel(m) {
					afterPos, afterVel = m, mV
				} else {
					beforePos, beforeVel = m, mV
				}
			}

			t.profile = append(t.profile, TrajectoryStep{PathPos: beforePos, PathVel: beforeVel})
			lastStep := t.profile[len(t.profile)-1]

			if t.limits.vMaxAcc(afterPos) < t.limits.vMaxVel(afterPos) {
				if afterPos > nextDisc.Pos || t.limits.phaseSlope(lastStep.PathPos, lastStep.PathVel, 1) > t.limits.vMaxAccDeriv(lastStep.PathPos) {
					return false
				}
			} else {
				if t.limits.phaseSlope(lastStep.PathPos, lastStep.PathVel, -1) > t.limits.vMaxVelDeriv(lastStep.PathPos) {
					return false
				}
			}

			p, v = lastStep.PathPos, lastStep.PathVel
			a = t.limits.aMax(p, v, 1)
		}
	}
}
