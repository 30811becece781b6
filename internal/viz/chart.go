// Package viz renders trajectories as terminal charts.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/ecodyn/metaflux/internal/ode"
)

const (
	chartHeight = 10
	chartWidth  = 80
)

// Chart plots every compartment of the trajectory as a stacked set of
// ascii charts, one per compartment, labeled by the given names. Missing
// names fall back to the compartment index.
func Chart(traj *ode.Trajectory, names []string) string {
	if traj.Len() == 0 {
		return ""
	}

	var b strings.Builder
	n := len(traj.States[0])
	for i := 0; i < n; i++ {
		caption := fmt.Sprintf("compartment %d", i)
		if i < len(names) && names[i] != "" {
			caption = names[i]
		}

		graph := asciigraph.Plot(traj.Series(i),
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(caption),
		)
		b.WriteString(HeaderStyle.Render(caption))
		b.WriteByte('\n')
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}

// GradientChart plots one value per swept temperature or parameter.
func GradientChart(values []float64, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(caption),
	)
}
