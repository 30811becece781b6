package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ecodyn/metaflux/internal/ode"
)

// SeriesStats summarizes one compartment's time series.
type SeriesStats struct {
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	Final float64
}

// Summarize computes summary statistics for compartment i over the
// trajectory. Panics on an empty trajectory.
func Summarize(traj *ode.Trajectory, i int) SeriesStats {
	series := traj.Series(i)
	mean, std := stat.MeanStdDev(series, nil)
	return SeriesStats{
		Mean:  mean,
		Std:   std,
		Min:   floats.Min(series),
		Max:   floats.Max(series),
		Final: series[len(series)-1],
	}
}

// SummarizeAll returns one SeriesStats per compartment.
func SummarizeAll(traj *ode.Trajectory) []SeriesStats {
	if traj.Len() == 0 {
		return nil
	}
	n := len(traj.States[0])
	out := make([]SeriesStats, n)
	for i := 0; i < n; i++ {
		out[i] = Summarize(traj, i)
	}
	return out
}
