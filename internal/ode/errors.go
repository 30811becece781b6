package ode

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrNonFinite indicates the state or derivative produced NaN or Inf.
	ErrNonFinite = errors.New("ode: non-finite state (NaN or Inf detected)")

	// ErrIterBudget indicates the solver exceeded its iteration budget.
	ErrIterBudget = errors.New("ode: iteration budget exhausted")

	// ErrStepTooSmall indicates the adaptive step fell below machine resolution.
	ErrStepTooSmall = errors.New("ode: adaptive step below minimum")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch between state and system")

	// ErrEmptyGrid indicates Solve was given no sample times.
	ErrEmptyGrid = errors.New("ode: empty sample-time grid")
)

// SolveError wraps a solver failure with the time and iteration it occurred at.
type SolveError struct {
	Time    float64
	Iter    int
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve failed at t=%.6g (iter %d): %v", e.Time, e.Iter, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
