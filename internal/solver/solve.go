package solver

import (
	"math"

	"github.com/ecodyn/metaflux/internal/ode"
)

const minStep = 1e-12

// Solve integrates sys from times[0] to the last entry of times, recording
// the state at exactly the requested sample times. Between samples it
// advances with an adaptive Dormand-Prince stepper whose step is capped at
// opts.MaxStep; the total number of internal steps is bounded by
// opts.MaxIter. times must be strictly increasing. With opts.Dense set,
// internal steps are recorded as well.
func Solve(sys ode.System, x0 ode.State, times []float64, opts ode.Options) (*ode.Trajectory, error) {
	if len(times) == 0 {
		return nil, ode.ErrEmptyGrid
	}
	if len(x0) != sys.Dim() {
		return nil, ode.ErrDimensionMismatch
	}
	if !x0.IsValid() {
		return nil, ode.ErrNonFinite
	}

	stepper := NewDormandPrince()

	traj := &ode.Trajectory{
		Times:  make([]float64, 0, len(times)),
		States: make([]ode.State, 0, len(times)),
	}

	x := x0.Clone()
	t := times[0]
	traj.Times = append(traj.Times, t)
	traj.States = append(traj.States, x.Clone())

	dt := opts.InitStep
	if dt <= 0 || dt > opts.MaxStep {
		dt = opts.MaxStep
	}

	iter := 0
	for _, target := range times[1:] {
		for t < target-minStep {
			if iter >= opts.MaxIter {
				return nil, &ode.SolveError{Time: t, Iter: iter, Wrapped: ode.ErrIterBudget}
			}

			h := math.Min(dt, opts.MaxStep)
			if t+h > target {
				h = target - t
			}
			if h < minStep {
				return nil, &ode.SolveError{Time: t, Iter: iter, Wrapped: ode.ErrStepTooSmall}
			}

			next, dtNext, err := stepper.StepAdaptive(sys, x, t, h, opts.Tolerance)
			if err != nil {
				return nil, &ode.SolveError{Time: t, Iter: iter, Wrapped: err}
			}
			if !next.IsValid() {
				return nil, &ode.SolveError{Time: t, Iter: iter, Wrapped: ode.ErrNonFinite}
			}

			x = next
			t += h
			dt = dtNext
			iter++

			if opts.Dense && t < target-minStep {
				traj.Times = append(traj.Times, t)
				traj.States = append(traj.States, x.Clone())
			}
		}

		// Snap to the grid point to avoid drift from repeated h arithmetic.
		t = target
		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, x.Clone())
	}

	return traj, nil
}
