// Package experiment composes configured food webs into runnable
// experiments: single simulations, warming gradients across a temperature
// ramp, and parallel parameter sweeps.
package experiment

import (
	"context"
	"fmt"

	"github.com/ecodyn/metaflux/internal/config"
	"github.com/ecodyn/metaflux/internal/foodweb"
	"github.com/ecodyn/metaflux/internal/ode"
)

// Experiment binds a run configuration to a built web context.
type Experiment struct {
	cfg *config.Config
	ctx *foodweb.Context
}

func New(cfg *config.Config) (*Experiment, error) {
	ctx, err := cfg.BuildContext()
	if err != nil {
		return nil, fmt.Errorf("experiment setup: %w", err)
	}
	return &Experiment{cfg: cfg, ctx: ctx}, nil
}

// Context exposes the built web context, e.g. for observers or analysis.
func (e *Experiment) Context() *foodweb.Context { return e.ctx }

// Run simulates the configured time span from the configured initial state.
func (e *Experiment) Run() (*ode.Trajectory, error) {
	return foodweb.Simulate(e.ctx, e.cfg.InitState(), e.cfg.Start, e.cfg.Stop, e.cfg.Step, e.cfg.SolverOptions())
}

// RunEnsemble simulates the same web from several initial conditions in
// parallel. Each run builds its own context so temperature updates in one
// cannot leak into another.
func (e *Experiment) RunEnsemble(ctx context.Context, inits []ode.State) ([]*ode.Trajectory, error) {
	run := func(x0 ode.State) (*ode.Trajectory, error) {
		webCtx, err := e.cfg.BuildContext()
		if err != nil {
			return nil, err
		}
		return foodweb.Simulate(webCtx, x0, e.cfg.Start, e.cfg.Stop, e.cfg.Step, e.cfg.SolverOptions())
	}
	return ode.NewEnsemble(run).Run(ctx, inits)
}
