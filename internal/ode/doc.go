// Package ode provides the primitives shared by the solver and the
// food-web model:
//
//   - [State]: vector of compartment concentrations
//   - [System]: interface for ODE right-hand sides (dX/dt = f(X, t))
//   - [Options]: solver configuration (max step, tolerance, iteration budget)
//   - [Trajectory]: time-indexed sequence of solved states
//
// The package knows nothing about food webs; it is the contract between
// the model in internal/foodweb and the steppers in internal/solver.
//
// # Thread Safety
//
// States and trajectories are plain data with no internal locking. A single
// solve is sequential; independent solves are safe to run concurrently, and
// [Ensemble] does exactly that.
package ode
