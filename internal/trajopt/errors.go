package trajopt

import "errors"

// Sentinel errors surfaced by Trajectory construction. Once set, a
// Trajectory is permanently invalid: there is no retry, only inspection
// via EndTrajectory.
var (
	// ErrIntegrationDiverged indicates forward or backward integration
	// produced a negative path velocity.
	ErrIntegrationDiverged = errors.New("trajopt: integration diverged (negative path velocity)")

	// ErrBackwardMiss indicates backward integration reached the start of
	// the path without intersecting the forward profile.
	ErrBackwardMiss = errors.New("trajopt: backward integration did not meet the forward profile")
)

// SolveError wraps a sentinel error with the phase-plane position at
// which the solve failed.
type SolveError struct {
	PathPos float64
	PathVel float64
	Wrapped error
}

func (e *SolveError) Error() string {
	return e.Wrapped.Error()
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
