package foodweb

import "github.com/ecodyn/metaflux/internal/ode"

// Compartment is one node of the food web. Flux returns the net rate of
// change (gain minus loss) of the compartment at index i given the full
// system state. The variant set is closed: Autotroph, Heterotroph,
// CarbonPool, NutrientPool.
type Compartment interface {
	Flux(ctx *Context, x ode.State, i int) float64
}

// Exporter is implemented by the living compartments. The pool fluxes
// aggregate these contributions: CarbonOut is the unretained fraction of
// uptake plus constant mortality returned to the carbon pool, NutrientOut
// the gross uptake drawn from the nutrient pool. Both mirror the gain half
// of the compartment's own Flux exactly, so pool inflow balances living
// outflow at any state.
type Exporter interface {
	CarbonOut(ctx *Context, x ode.State, j int) float64
	NutrientOut(ctx *Context, x ode.State, j int) float64
}
