// Package solver implements the numerical integrators the simulation driver
// delegates to: fixed-step Euler and RK4, and an adaptive Dormand-Prince
// stepper used by [Solve] to advance between requested sample times.
package solver

import "github.com/ecodyn/metaflux/internal/ode"

// Stepper advances the system one fixed step.
type Stepper interface {
	Step(sys ode.System, x ode.State, t, dt float64) ode.State
}

// AdaptiveStepper additionally proposes the next step size from a local
// error estimate.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys ode.System, x ode.State, t, dt, tol float64) (ode.State, float64, error)
}
