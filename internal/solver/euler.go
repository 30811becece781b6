package solver

import "github.com/ecodyn/metaflux/internal/ode"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	dx := sys.Derive(x, t)
	result := make(ode.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
