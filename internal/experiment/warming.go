package experiment

import (
	"fmt"

	"github.com/ecodyn/metaflux/internal/foodweb"
	"github.com/ecodyn/metaflux/internal/ode"
)

// WarmingPoint is one rung of a temperature gradient: the temperature the
// web was run at and the trajectory it produced.
type WarmingPoint struct {
	Temperature float64
	Trajectory  *ode.Trajectory
}

// Warming runs the same experiment across an inclusive temperature ramp
// from tMin to tMax in nT evenly spaced steps, updating the context
// temperature between runs. Each run starts from the configured initial
// state; results are ordered cold to warm.
func (e *Experiment) Warming(tMin, tMax float64, nT int) ([]WarmingPoint, error) {
	if nT < 2 {
		return nil, fmt.Errorf("warming gradient needs at least 2 temperatures, got %d", nT)
	}
	if tMax <= tMin {
		return nil, fmt.Errorf("warming gradient needs tMax > tMin, got [%g, %g]", tMin, tMax)
	}

	points := make([]WarmingPoint, 0, nT)
	dT := (tMax - tMin) / float64(nT-1)
	for i := 0; i < nT; i++ {
		temp := tMin + float64(i)*dT
		if err := e.ctx.SetTemperature(temp); err != nil {
			return nil, err
		}
		traj, err := foodweb.Simulate(e.ctx, e.cfg.InitState(), e.cfg.Start, e.cfg.Stop, e.cfg.Step, e.cfg.SolverOptions())
		if err != nil {
			return nil, fmt.Errorf("warming run at T=%g: %w", temp, err)
		}
		points = append(points, WarmingPoint{Temperature: temp, Trajectory: traj})
	}
	return points, nil
}
