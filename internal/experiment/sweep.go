package experiment

import (
	"github.com/ecodyn/metaflux/internal/config"
	"github.com/ecodyn/metaflux/internal/foodweb"
	"github.com/ecodyn/metaflux/internal/ode"
)

// Sweep evaluates an experiment over a range of values for one parameter.
// Apply writes the swept value into a private copy of the configuration
// before the run.
type Sweep struct {
	Base   *config.Config
	Values []float64
	Apply  func(cfg *config.Config, v float64)
}

// SweepPoint is the outcome of one swept run.
type SweepPoint struct {
	Value float64
	Final ode.State
	Err   error
}

// Run executes all swept values in parallel and returns the points in
// value order. Individual run failures are recorded per point, not
// short-circuited, so a sweep across a bifurcation still reports the
// stable part of the range.
func (s *Sweep) Run() []SweepPoint {
	points := make([]SweepPoint, len(s.Values))
	ode.ParallelFor(len(s.Values), 1, func(start, end int) {
		for i := start; i < end; i++ {
			points[i] = s.runOne(s.Values[i])
		}
	})
	return points
}

func (s *Sweep) runOne(v float64) SweepPoint {
	cfg := cloneConfig(s.Base)
	s.Apply(cfg, v)

	webCtx, err := cfg.BuildContext()
	if err != nil {
		return SweepPoint{Value: v, Err: err}
	}
	traj, err := foodweb.Simulate(webCtx, cfg.InitState(), cfg.Start, cfg.Stop, cfg.Step, cfg.SolverOptions())
	if err != nil {
		return SweepPoint{Value: v, Err: err}
	}
	return SweepPoint{Value: v, Final: traj.Final()}
}

func cloneConfig(cfg *config.Config) *config.Config {
	out := *cfg
	out.Compartments = make([]config.CompartmentConfig, len(cfg.Compartments))
	copy(out.Compartments, cfg.Compartments)
	return &out
}
