package diagnostics

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajplan/internal/trajopt"
)

// unboundedVelocitySentinel replaces +Inf when plotting vMaxAcc, since
// the acceleration-limit curve is unbounded away from corners and
// would otherwise flatten the plot's scale.
const unboundedVelocitySentinel = 10.0

// LimitCurves samples traj's velocity- and acceleration-limit curves
// at samples evenly spaced arc lengths and renders each as its own
// asciigraph plot, returning both.
func LimitCurves(traj *trajopt.Trajectory, samples int, width, height int) (velocityLimit, accelerationLimit string) {
	length := traj.Path().Length
	if samples < 2 || length == 0 {
		return "", ""
	}

	vVel := make([]float64, samples)
	vAcc := make([]float64, samples)
	for i := 0; i < samples; i++ {
		s := length * float64(i) / float64(samples-1)
		vVel[i] = traj.VMaxVel(s)

		acc := traj.VMaxAcc(s)
		if acc > unboundedVelocitySentinel {
			acc = unboundedVelocitySentinel
		}
		vAcc[i] = acc
	}

	velocityLimit = asciigraph.Plot(vVel,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("vMax_vel(s)"),
	)
	accelerationLimit = asciigraph.Plot(vAcc,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("vMax_acc(s), capped at 10"),
	)
	return velocityLimit, accelerationLimit
}

// PathVelocityProfile renders the pathVel of each solved profile step,
// in step order, as an asciigraph plot.
func PathVelocityProfile(traj *trajopt.Trajectory, width, height int) string {
	profile := traj.Profile()
	if len(profile) == 0 {
		return ""
	}
	data := make([]float64, len(profile))
	for i, step := range profile {
		data[i] = step.PathVel
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("pathVel(step)"),
	)
}
