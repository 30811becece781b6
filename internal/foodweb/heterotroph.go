package foodweb

import "github.com/ecodyn/metaflux/internal/ode"

// Heterotroph gains biomass like an Autotroph but its uptake is further
// limited by a second resource (the consumer pool) with half-saturation
// Kc, and its gain rate is the consumption rate Cons rather than a
// photosynthetic one.
type Heterotroph struct {
	Eps  float64
	Ks   float64
	Kc   float64
	D    float64
	A    float64
	Cons TPC
	Resp TPC
}

func NewHeterotroph(eps, ks, kc, d, a float64, cons, resp TPC) *Heterotroph {
	return &Heterotroph{Eps: eps, Ks: ks, Kc: kc, D: d, A: a, Cons: cons, Resp: resp}
}

// uptake is the gross per-capita-scaled draw from the shared resource,
// bounded by both limiting resources.
func (h *Heterotroph) uptake(ctx *Context, x ode.State, j int) float64 {
	return x[j] * Limitation(x[ctx.Resource], h.Ks) * Thermal(h.Cons, ctx.T) * Limitation(x[ctx.Consumer], h.Kc)
}

func (h *Heterotroph) Flux(ctx *Context, x ode.State, i int) float64 {
	c := x[i]
	gain := h.Eps * h.uptake(ctx, x, i)
	loss := c*Thermal(h.Resp, ctx.T) + c*h.D + c*c*h.A
	return gain - loss
}

func (h *Heterotroph) CarbonOut(ctx *Context, x ode.State, j int) float64 {
	return (1-h.Eps)*h.uptake(ctx, x, j) + x[j]*h.D
}

func (h *Heterotroph) NutrientOut(ctx *Context, x ode.State, j int) float64 {
	return h.uptake(ctx, x, j)
}
