// Package foodweb models the metabolic dynamics of a multi-compartment
// food web: autotroph and heterotroph species exchanging material with a
// shared carbon pool and a shared nutrient pool.
//
// Each compartment implements [Compartment], whose Flux method returns that
// compartment's instantaneous net rate of change (gain minus loss) given
// the full system state and a read-only [Context] (temperature, pool
// indices, the [Ecosystem]). [System] composes the per-compartment fluxes
// into a derivative vector for the solver, and [Simulate] drives a full
// integration over a time grid.
//
// Rates are temperature-dependent through an Arrhenius response ([Thermal])
// and bounded by resource scarcity through Michaelis-Menten kinetics
// ([Limitation]).
//
// The flux functions are pure and never guard numerical domain errors:
// a non-positive temperature or a zero concentration with zero
// half-saturation propagates as a non-finite value for the solver to
// detect.
package foodweb
