package ode

import (
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0, 3.0}, true},
		{"zeros", State{0.0, 0.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Norm(t *testing.T) {
	tests := []struct {
		state    State
		expected float64
	}{
		{State{3, 4}, 5.0},
		{State{1, 0}, 1.0},
		{State{0, 0}, 0.0},
		{State{1, 1, 1, 1}, 2.0},
	}

	for _, tt := range tests {
		if got := tt.state.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestState_Arithmetic(t *testing.T) {
	a := State{1, 2, 3}
	b := State{4, 5, 6}

	sum := a.Add(b)
	for i, want := range []float64{5, 7, 9} {
		if sum[i] != want {
			t.Errorf("Add[%d] = %v, want %v", i, sum[i], want)
		}
	}

	diff := b.Sub(a)
	for i, want := range []float64{3, 3, 3} {
		if diff[i] != want {
			t.Errorf("Sub[%d] = %v, want %v", i, diff[i], want)
		}
	}

	scaled := a.Scale(2)
	for i, want := range []float64{2, 4, 6} {
		if scaled[i] != want {
			t.Errorf("Scale[%d] = %v, want %v", i, scaled[i], want)
		}
	}

	// Original operands untouched.
	if a[0] != 1 || b[0] != 4 {
		t.Error("arithmetic mutated its operands")
	}
}

func TestState_Clone(t *testing.T) {
	orig := State{1, 2, 3}
	c := orig.Clone()
	c[0] = 99
	if orig[0] != 1 {
		t.Error("Clone shares backing storage with the original")
	}
}

func TestTrajectory_Series(t *testing.T) {
	traj := &Trajectory{
		Times:  []float64{0, 1, 2},
		States: []State{{1, 10}, {2, 20}, {3, 30}},
	}

	col := traj.Series(1)
	for i, want := range []float64{10, 20, 30} {
		if col[i] != want {
			t.Errorf("Series(1)[%d] = %v, want %v", i, col[i], want)
		}
	}

	if traj.Len() != 3 {
		t.Errorf("Len() = %d, want 3", traj.Len())
	}
	if f := traj.Final(); f[0] != 3 {
		t.Errorf("Final()[0] = %v, want 3", f[0])
	}
}

func TestTrajectory_FinalEmpty(t *testing.T) {
	traj := &Trajectory{}
	if traj.Final() != nil {
		t.Error("Final() on empty trajectory should be nil")
	}
}
