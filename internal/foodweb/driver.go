package foodweb

import (
	"math"

	"github.com/ecodyn/metaflux/internal/ode"
	"github.com/ecodyn/metaflux/internal/solver"
)

// TimeGrid builds the inclusive sequence of output timestamps
// start, start+step, ... up to stop. A span of 10 at step 1 yields 11
// points.
func TimeGrid(start, stop, step float64) ([]float64, error) {
	if stop <= start {
		return nil, ErrTimeSpan
	}
	if step <= 0 {
		return nil, ErrSampleStep
	}
	n := int(math.Floor((stop-start)/step+1e-9)) + 1
	times := make([]float64, n)
	for i := range times {
		times[i] = start + float64(i)*step
	}
	return times, nil
}

// Simulate validates preconditions, builds the output time grid and hands
// the derivative assembly to the solver. The trajectory is returned
// unchanged from the solver; any integration failure surfaces verbatim.
func Simulate(ctx *Context, x0 ode.State, start, stop, step float64, opts ode.Options) (*ode.Trajectory, error) {
	if err := ctx.Web.Validate(); err != nil {
		return nil, err
	}
	if len(x0) != ctx.Web.Size() {
		return nil, ErrStateLength
	}

	times, err := TimeGrid(start, stop, step)
	if err != nil {
		return nil, err
	}

	return solver.Solve(NewSystem(ctx), x0, times, opts)
}
