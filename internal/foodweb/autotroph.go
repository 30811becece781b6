package foodweb

import "github.com/ecodyn/metaflux/internal/ode"

// Autotroph gains biomass from the shared nutrient alone. Eps is the
// fraction of uptake retained, Ks the half-saturation for the nutrient,
// D a density-independent loss rate and A the density-dependent
// (self-limitation) loss coefficient. Photo and Resp parameterize the
// photosynthetic and respiration rates.
type Autotroph struct {
	Eps   float64
	Ks    float64
	D     float64
	A     float64
	Photo TPC
	Resp  TPC
}

func NewAutotroph(eps, ks, d, a float64, photo, resp TPC) *Autotroph {
	return &Autotroph{Eps: eps, Ks: ks, D: d, A: a, Photo: photo, Resp: resp}
}

func (au *Autotroph) Flux(ctx *Context, x ode.State, i int) float64 {
	c := x[i]
	gain := c * au.Eps * Limitation(x[ctx.Resource], au.Ks) * Thermal(au.Photo, ctx.T)
	loss := c*Thermal(au.Resp, ctx.T) + c*au.D + c*c*au.A
	return gain - loss
}

func (au *Autotroph) CarbonOut(ctx *Context, x ode.State, j int) float64 {
	c := x[j]
	return c*(1-au.Eps)*Limitation(x[ctx.Resource], au.Ks)*Thermal(au.Photo, ctx.T) + c*au.D
}

func (au *Autotroph) NutrientOut(ctx *Context, x ode.State, j int) float64 {
	return x[j] * Limitation(x[ctx.Resource], au.Ks) * Thermal(au.Photo, ctx.T)
}
