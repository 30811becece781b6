package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecodyn/metaflux/internal/foodweb"
	"github.com/ecodyn/metaflux/internal/ode"
)

const (
	DefaultTemperature = 293.0
	DefaultStart       = 0.0
	DefaultStop        = 100.0
	DefaultStep        = 1.0
	DefaultMaxStep     = 0.1
	DefaultTolerance   = 1e-6
	DefaultMaxIter     = 100000
)

// Config describes one simulation run: the web composition, the
// environment, the output time grid and the solver settings.
type Config struct {
	Temperature  float64             `yaml:"temperature"`
	Start        float64             `yaml:"start"`
	Stop         float64             `yaml:"stop"`
	Step         float64             `yaml:"step"`
	Compartments []CompartmentConfig `yaml:"compartments"`
	Solver       SolverConfig        `yaml:"solver"`
}

// CompartmentConfig is the YAML shape of one compartment. Kind selects the
// variant; the remaining fields apply per kind and default to zero.
type CompartmentConfig struct {
	Kind    string    `yaml:"kind"` // autotroph, heterotroph, carbon_pool, nutrient_pool
	Initial float64   `yaml:"initial"`
	Eps     float64   `yaml:"eps"`
	Ks      float64   `yaml:"ks"`
	Kc      float64   `yaml:"kc"`
	D       float64   `yaml:"d"`
	A       float64   `yaml:"a"`
	Growth  TPCConfig `yaml:"growth"` // photosynthesis or consumption rate
	Resp    TPCConfig `yaml:"resp"`
	Linked  bool      `yaml:"linked"`
	Refill  float64   `yaml:"refill"`
}

type TPCConfig struct {
	B0 float64 `yaml:"b0"`
	E  float64 `yaml:"e"`
	Tr float64 `yaml:"tr"`
}

type SolverConfig struct {
	MaxStep   float64 `yaml:"max_step"`
	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"max_iter"`
}

func DefaultConfig() *Config {
	return &Config{
		Temperature: DefaultTemperature,
		Start:       DefaultStart,
		Stop:        DefaultStop,
		Step:        DefaultStep,
		Solver: SolverConfig{
			MaxStep:   DefaultMaxStep,
			Tolerance: DefaultTolerance,
			MaxIter:   DefaultMaxIter,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (t TPCConfig) tpc() foodweb.TPC {
	return foodweb.TPC{B0: t.B0, E: t.E, Tr: t.Tr}
}

// BuildEcosystem assembles the compartments in declared order.
func (c *Config) BuildEcosystem() (*foodweb.Ecosystem, error) {
	comps := make([]foodweb.Compartment, 0, len(c.Compartments))
	for i, cc := range c.Compartments {
		switch cc.Kind {
		case "autotroph":
			comps = append(comps, foodweb.NewAutotroph(cc.Eps, cc.Ks, cc.D, cc.A, cc.Growth.tpc(), cc.Resp.tpc()))
		case "heterotroph":
			comps = append(comps, foodweb.NewHeterotroph(cc.Eps, cc.Ks, cc.Kc, cc.D, cc.A, cc.Growth.tpc(), cc.Resp.tpc()))
		case "carbon_pool":
			comps = append(comps, foodweb.NewCarbonPool(cc.Linked))
		case "nutrient_pool":
			comps = append(comps, foodweb.NewNutrientPool(cc.Refill))
		default:
			return nil, fmt.Errorf("config: compartment %d has unknown kind %q", i, cc.Kind)
		}
	}
	return foodweb.NewEcosystem(comps...), nil
}

// BuildContext builds the ecosystem and a context whose resource index
// points at the nutrient pool and consumer index at the carbon pool.
func (c *Config) BuildContext() (*foodweb.Context, error) {
	web, err := c.BuildEcosystem()
	if err != nil {
		return nil, err
	}
	if err := web.Validate(); err != nil {
		return nil, err
	}
	carbon, nutrient := web.PoolIndices()
	return foodweb.NewContext(web, c.Temperature, nutrient, carbon)
}

// InitState returns the initial condition in compartment order.
func (c *Config) InitState() ode.State {
	x0 := make(ode.State, len(c.Compartments))
	for i, cc := range c.Compartments {
		x0[i] = cc.Initial
	}
	return x0
}

// SolverOptions maps the YAML solver block onto ode.Options, falling back
// to defaults for unset fields.
func (c *Config) SolverOptions() ode.Options {
	opts := ode.DefaultOptions()
	if c.Solver.MaxStep > 0 {
		opts.MaxStep = c.Solver.MaxStep
	}
	if c.Solver.Tolerance > 0 {
		opts.Tolerance = c.Solver.Tolerance
	}
	if c.Solver.MaxIter > 0 {
		opts.MaxIter = c.Solver.MaxIter
	}
	return opts
}
