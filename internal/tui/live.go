// Package tui shows a food-web simulation evolving live in the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/ecodyn/metaflux/internal/foodweb"
	"github.com/ecodyn/metaflux/internal/ode"
	"github.com/ecodyn/metaflux/internal/solver"
	"github.com/ecodyn/metaflux/internal/viz"
)

const (
	frameRate       = 30
	stepsPerFrame   = 4
	historyCapacity = 200
	graphHeight     = 8
	graphWidth      = 70
)

type TickMsg time.Time

type Model struct {
	ctx     *foodweb.Context
	sys     *foodweb.System
	stepper *solver.RK4

	x       ode.State
	x0      ode.State
	t       float64
	dt      float64
	names   []string
	history [][]float64
	running bool
	failed  bool
}

func NewModel(ctx *foodweb.Context, x0 ode.State, dt float64, names []string) Model {
	history := make([][]float64, len(x0))
	return Model{
		ctx:     ctx,
		sys:     foodweb.NewSystem(ctx),
		stepper: solver.NewRK4(),
		x:       x0.Clone(),
		x0:      x0.Clone(),
		dt:      dt,
		names:   names,
		history: history,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.x = m.x0.Clone()
			m.t = 0
			m.failed = false
			for i := range m.history {
				m.history[i] = nil
			}
		}
		return m, nil

	case TickMsg:
		if m.running && !m.failed {
			for i := 0; i < stepsPerFrame; i++ {
				m.x = m.stepper.Step(m.sys, m.x, m.t, m.dt)
				m.t += m.dt
			}
			if !m.x.IsValid() {
				m.failed = true
				m.running = false
			}
			for i, v := range m.x {
				m.history[i] = append(m.history[i], v)
				if len(m.history[i]) > historyCapacity {
					m.history[i] = m.history[i][1:]
				}
			}
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viz.HeaderStyle.Render(fmt.Sprintf("metaflux live  t=%.2f  T=%.1fK", m.t, m.ctx.T)))
	b.WriteString("\n\n")

	for i := range m.history {
		if len(m.history[i]) < 2 {
			continue
		}
		name := fmt.Sprintf("compartment %d", i)
		if i < len(m.names) && m.names[i] != "" {
			name = m.names[i]
		}
		b.WriteString(viz.LabelStyle.Render(name))
		b.WriteString(viz.ValueStyle.Render(fmt.Sprintf("%.4f", m.x[i])))
		b.WriteByte('\n')
		b.WriteString(asciigraph.Plot(m.history[i],
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
		))
		b.WriteString("\n\n")
	}

	if m.failed {
		b.WriteString(viz.HeaderStyle.Render("state diverged (non-finite), press r to reset"))
		b.WriteByte('\n')
	}
	b.WriteString(viz.HelpStyle.Render("space pause  r reset  q quit"))
	b.WriteByte('\n')

	return b.String()
}

// Run starts the live view and blocks until the user quits.
func Run(ctx *foodweb.Context, x0 ode.State, dt float64, names []string) error {
	p := tea.NewProgram(NewModel(ctx, x0, dt, names))
	_, err := p.Run()
	return err
}
