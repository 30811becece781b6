// Package analysis provides post-run diagnostics for food-web
// trajectories: per-compartment summary statistics, a mass-balance check
// verifying that pool exchanges cancel, and equilibrium detection.
package analysis
