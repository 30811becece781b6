package analysis

import (
	"math"
	"testing"

	"github.com/ecodyn/metaflux/internal/foodweb"
	"github.com/ecodyn/metaflux/internal/ode"
)

var flat = foodweb.TPC{B0: 1.0, E: 0.0, Tr: 293.0}

func linkedWeb(t *testing.T) *foodweb.Context {
	t.Helper()
	web := foodweb.NewEcosystem(
		foodweb.NewAutotroph(0.1, 1.0, 0.01, 0.001, foodweb.TPC{B0: 0.8, E: 0.6, Tr: 293}, foodweb.TPC{B0: 0.1, E: 0.5, Tr: 293}),
		foodweb.NewHeterotroph(0.1, 0.5, 2.0, 0.02, 0.0005, foodweb.TPC{B0: 1.2, E: 0.55, Tr: 290}, foodweb.TPC{B0: 0.15, E: 0.5, Tr: 290}),
		foodweb.NewCarbonPool(true),
		foodweb.NewNutrientPool(2.5),
	)
	ctx, err := foodweb.NewContext(web, 300, 3, 2)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func TestBalanceResidualZero(t *testing.T) {
	ctx := linkedWeb(t)
	states := []ode.State{
		{1.3, 0.9, 4.0, 2.5},
		{0.2, 0.1, 10.0, 0.3},
		{5.0, 2.0, 1.0, 8.0},
	}
	for _, x := range states {
		if r := BalanceResidual(ctx, x); math.Abs(r) > 1e-10 {
			t.Errorf("residual at %v = %v, want ~0", x, r)
		}
	}
}

func TestMassBalanceOverTrajectory(t *testing.T) {
	ctx := linkedWeb(t)
	traj, err := foodweb.Simulate(ctx, ode.State{1.3, 0.9, 4.0, 6.0}, 0, 20, 1, ode.DefaultOptions())
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	mb := NewMassBalance(ctx)
	if worst := mb.CheckTrajectory(traj); worst > 1e-9 {
		t.Errorf("worst residual over trajectory = %v, want ~0", worst)
	}

	mb.Reset()
	if mb.Value() != 0 {
		t.Error("Reset did not clear the accumulator")
	}
}

func TestSummarize(t *testing.T) {
	traj := &ode.Trajectory{
		Times:  []float64{0, 1, 2, 3},
		States: []ode.State{{1}, {2}, {3}, {4}},
	}
	s := Summarize(traj, 0)
	if s.Mean != 2.5 {
		t.Errorf("mean = %v, want 2.5", s.Mean)
	}
	if s.Min != 1 || s.Max != 4 || s.Final != 4 {
		t.Errorf("min/max/final = %v/%v/%v, want 1/4/4", s.Min, s.Max, s.Final)
	}
}

func TestSettled(t *testing.T) {
	// A decaying autotroph eventually sits still.
	web := foodweb.NewEcosystem(
		foodweb.NewAutotroph(0, 1.0, 0.5, 0, flat, foodweb.TPC{B0: 0, E: 0, Tr: 293}),
		foodweb.NewCarbonPool(false),
		foodweb.NewNutrientPool(0),
	)
	ctx, err := foodweb.NewContext(web, 293, 2, 1)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	sys := foodweb.NewSystem(ctx)

	traj, err := foodweb.Simulate(ctx, ode.State{1, 0, 0}, 0, 60, 1, ode.DefaultOptions())
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if !Settled(sys, traj, 5, 1e-6) {
		t.Error("expected decayed system to be settled over the tail window")
	}

	early := &ode.Trajectory{Times: traj.Times[:3], States: traj.States[:3]}
	if Settled(sys, early, 3, 1e-6) {
		t.Error("early transient should not count as settled")
	}
}
