package foodweb

// Ecosystem is the ordered collection of compartments. Order matters: the
// state vector is indexed identically.
type Ecosystem struct {
	Compartments []Compartment
}

func NewEcosystem(compartments ...Compartment) *Ecosystem {
	return &Ecosystem{Compartments: compartments}
}

func (e *Ecosystem) Size() int { return len(e.Compartments) }

// Validate requires exactly one CarbonPool and exactly one NutrientPool
// among the compartments.
func (e *Ecosystem) Validate() error {
	carbon, nutrient := 0, 0
	for _, comp := range e.Compartments {
		switch comp.(type) {
		case *CarbonPool:
			carbon++
		case *NutrientPool:
			nutrient++
		}
	}
	if carbon != 1 || nutrient != 1 {
		return ErrPoolCount
	}
	return nil
}

// PoolIndices returns the positions of the carbon and nutrient pools.
// Call Validate first; with duplicate pools the last position wins.
func (e *Ecosystem) PoolIndices() (carbon, nutrient int) {
	carbon, nutrient = -1, -1
	for i, comp := range e.Compartments {
		switch comp.(type) {
		case *CarbonPool:
			carbon = i
		case *NutrientPool:
			nutrient = i
		}
	}
	return carbon, nutrient
}
