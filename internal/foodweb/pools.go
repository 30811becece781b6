package foodweb

import "github.com/ecodyn/metaflux/internal/ode"

// CarbonPool is the shared non-living carbon reservoir. When Linked is
// false the pool is disconnected from the web and its flux is identically
// zero.
type CarbonPool struct {
	Linked bool
}

func NewCarbonPool(linked bool) *CarbonPool {
	return &CarbonPool{Linked: linked}
}

// Flux aggregates, over every living compartment, the carbon returned to
// the pool (excretion, mortality, unretained uptake) minus the carbon
// drawn out of it by heterotroph consumption. The pool positions
// ctx.Resource and ctx.Consumer are excluded from the scan.
func (cp *CarbonPool) Flux(ctx *Context, x ode.State, _ int) float64 {
	if !cp.Linked {
		return 0
	}

	gain := 0.0
	loss := 0.0
	for j, comp := range ctx.Web.Compartments {
		if j == ctx.Resource || j == ctx.Consumer {
			continue
		}
		exp, ok := comp.(Exporter)
		if !ok {
			continue
		}
		gain += exp.CarbonOut(ctx, x, j)
		if h, ok := comp.(*Heterotroph); ok {
			loss += h.uptake(ctx, x, j)
		}
	}
	return gain - loss
}

// NutrientPool is the shared nutrient reservoir, replenished externally at
// the constant rate Refill.
type NutrientPool struct {
	Refill float64
}

func NewNutrientPool(refill float64) *NutrientPool {
	return &NutrientPool{Refill: refill}
}

// Flux is replenishment minus the gross uptake of every living
// compartment, again skipping the pool positions themselves.
func (np *NutrientPool) Flux(ctx *Context, x ode.State, _ int) float64 {
	loss := 0.0
	for j, comp := range ctx.Web.Compartments {
		if j == ctx.Resource || j == ctx.Consumer {
			continue
		}
		if exp, ok := comp.(Exporter); ok {
			loss += exp.NutrientOut(ctx, x, j)
		}
	}
	return np.Refill - loss
}
