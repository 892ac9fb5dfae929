// Package sampler evaluates a finished trajopt.Trajectory at a
// caller-supplied time, turning the piecewise-parabolic phase-plane
// profile back into configuration-space position and velocity.
//
// The scan-position cache that the reference keeps inside the
// trajectory object is externalized here as a Cursor: sampling is a
// pure function of (Trajectory, Cursor, t), so concurrent callers each
// hold their own Cursor rather than contending over shared state.
package sampler

import (
	"github.com/san-kum/trajplan/internal/trajopt"
	"github.com/san-kum/trajplan/internal/vecn"
)

// Cursor accelerates monotonically increasing time queries against a
// single Trajectory. Its zero value is a valid cursor positioned at
// the start of the profile.
type Cursor struct {
	lastTime  float64
	lastIndex int
}

// NewCursor returns a cursor ready to sample from t = 0.
func NewCursor() *Cursor {
	return &Cursor{}
}

// Sample returns the configuration-space position and velocity of traj
// at time t. Repeated calls with increasing t reuse the cursor's scan
// position; a call with t less than the cursor's last time resets the
// scan from the beginning of the profile, so random access remains
// correct at the cost of an O(k) rescan.
func Sample(traj *trajopt.Trajectory, cursor *Cursor, t float64) (vecn.Vector, vecn.Vector) {
	profile := traj.Profile()
	path := traj.Path()

	if len(profile) == 0 {
		return nil, nil
	}

	last := profile[len(profile)-1]
	if t >= last.Time {
		cursor.lastTime = t
		cursor.lastIndex = len(profile) - 1
		pos := path.Config(last.PathPos)
		vel := path.Tangent(last.PathPos).Scale(last.PathVel)
		return pos, vel
	}

	idx := cursor.lastIndex
	if t < cursor.lastTime {
		idx = 0
	}
	for idx < len(profile) && profile[idx].Time <= t {
		idx++
	}
	if idx < 1 {
		idx = 1
	}
	if idx >= len(profile) {
		idx = len(profile) - 1
	}

	cursor.lastTime = t
	cursor.lastIndex = idx

	prev, cur := profile[idx-1], profile[idx]
	delta := cur.Time - prev.Time

	var accel float64
	if delta != 0 {
		accel = 2 * (cur.PathPos - prev.PathPos - delta*prev.PathVel) / (delta * delta)
	}

	tau := t - prev.Time
	s := prev.PathPos + tau*prev.PathVel + 0.5*tau*tau*accel
	vs := prev.PathVel + tau*accel

	pos := path.Config(s)
	vel := path.Tangent(s).Scale(vs)
	return pos, vel
}
