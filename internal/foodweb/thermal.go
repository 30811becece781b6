package foodweb

import "math"

// Boltzmann constant in eV/K, the scale the activation energy E is
// expressed in.
const Boltzmann = 8.617333262e-5

// TPC holds thermal-performance parameters for one metabolic rate:
// reference rate B0 observed at reference temperature Tr, and activation
// energy E. Immutable once attached to a compartment.
type TPC struct {
	B0 float64
	E  float64
	Tr float64
}

// Thermal scales the reference rate to absolute temperature T using the
// Arrhenius form B0 * exp((-E/k) * (1/T - 1/Tr)). Callers must guarantee
// T > 0.
func Thermal(p TPC, T float64) float64 {
	return p.B0 * math.Exp((-p.E/Boltzmann)*(1.0/T-1.0/p.Tr))
}
