package config

var Presets = map[string]*Config{
	"single-species": {
		Temperature: 293, Start: 0, Stop: 100, Step: 1,
		Compartments: []CompartmentConfig{
			{Kind: "autotroph", Initial: 1.0, Eps: 0.5, Ks: 1.0, D: 0.01, A: 0.001,
				Growth: TPCConfig{B0: 1.0, E: 0.0, Tr: 293}, Resp: TPCConfig{B0: 0.1, E: 0.65, Tr: 293}},
			{Kind: "carbon_pool", Initial: 0.0, Linked: false},
			{Kind: "nutrient_pool", Initial: 5.0, Refill: 1.0},
		},
		Solver: SolverConfig{MaxStep: DefaultMaxStep, Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter},
	},
	"chain": {
		Temperature: 293, Start: 0, Stop: 200, Step: 1,
		Compartments: []CompartmentConfig{
			{Kind: "autotroph", Initial: 1.0, Eps: 0.5, Ks: 1.0, D: 0.01, A: 0.001,
				Growth: TPCConfig{B0: 1.0, E: 0.32, Tr: 293}, Resp: TPCConfig{B0: 0.1, E: 0.65, Tr: 293}},
			{Kind: "heterotroph", Initial: 0.5, Eps: 0.4, Ks: 0.8, Kc: 2.0, D: 0.02, A: 0.0005,
				Growth: TPCConfig{B0: 0.9, E: 0.65, Tr: 293}, Resp: TPCConfig{B0: 0.12, E: 0.65, Tr: 293}},
			{Kind: "carbon_pool", Initial: 2.0, Linked: true},
			{Kind: "nutrient_pool", Initial: 5.0, Refill: 1.0},
		},
		Solver: SolverConfig{MaxStep: DefaultMaxStep, Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter},
	},
	"warming": {
		Temperature: 283, Start: 0, Stop: 150, Step: 1,
		Compartments: []CompartmentConfig{
			{Kind: "autotroph", Initial: 1.0, Eps: 0.5, Ks: 1.0, D: 0.01, A: 0.001,
				Growth: TPCConfig{B0: 1.0, E: 0.32, Tr: 283}, Resp: TPCConfig{B0: 0.1, E: 0.65, Tr: 283}},
			{Kind: "heterotroph", Initial: 0.8, Eps: 0.4, Ks: 0.8, Kc: 2.0, D: 0.02, A: 0.0005,
				Growth: TPCConfig{B0: 0.9, E: 0.65, Tr: 283}, Resp: TPCConfig{B0: 0.12, E: 0.65, Tr: 283}},
			{Kind: "carbon_pool", Initial: 2.0, Linked: true},
			{Kind: "nutrient_pool", Initial: 5.0, Refill: 1.2},
		},
		Solver: SolverConfig{MaxStep: DefaultMaxStep, Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
