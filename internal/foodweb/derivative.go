package foodweb

import "github.com/ecodyn/metaflux/internal/ode"

// System adapts a Context to the solver's ode.System interface. Each call
// to Derive evaluates every compartment's flux against the same state
// snapshot; nothing is mutated.
type System struct {
	ctx *Context
}

func NewSystem(ctx *Context) *System {
	return &System{ctx: ctx}
}

func (s *System) Dim() int { return s.ctx.Web.Size() }

func (s *System) Derive(x ode.State, _ float64) ode.State {
	out := make(ode.State, len(x))
	for i, comp := range s.ctx.Web.Compartments {
		out[i] = comp.Flux(s.ctx, x, i)
	}
	return out
}
