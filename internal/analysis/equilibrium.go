package analysis

import "github.com/ecodyn/metaflux/internal/ode"

// AtEquilibrium reports whether the derivative norm at x is below tol.
func AtEquilibrium(sys ode.System, x ode.State, t, tol float64) bool {
	return sys.Derive(x, t).Norm() < tol
}

// Settled reports whether the trajectory has reached a steady state: the
// derivative norm stays below tol over the last window samples. A window
// larger than the trajectory is clamped.
func Settled(sys ode.System, traj *ode.Trajectory, window int, tol float64) bool {
	n := traj.Len()
	if n == 0 {
		return false
	}
	if window > n {
		window = n
	}
	for i := n - window; i < n; i++ {
		t, x := traj.At(i)
		if !AtEquilibrium(sys, x, t, tol) {
			return false
		}
	}
	return true
}
