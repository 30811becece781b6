package ode

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	return floats.Norm(s, 2)
}

func (s State) Add(other State) State {
	result := s.Clone()
	floats.Add(result, other)
	return result
}

func (s State) Sub(other State) State {
	result := s.Clone()
	floats.Sub(result, other)
	return result
}

func (s State) Scale(factor float64) State {
	result := s.Clone()
	floats.Scale(factor, result)
	return result
}

// System is an autonomous-or-not ODE right-hand side dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Options controls how Solve advances between requested sample times.
type Options struct {
	MaxStep   float64
	InitStep  float64
	Tolerance float64
	MaxIter   int
	Dense     bool
}

func DefaultOptions() Options {
	return Options{
		MaxStep:   0.1,
		InitStep:  0.01,
		Tolerance: 1e-6,
		MaxIter:   100000,
		Dense:     false,
	}
}

// Trajectory is the solved time series: one state per requested sample time.
type Trajectory struct {
	Times  []float64
	States []State
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

func (tr *Trajectory) At(i int) (float64, State) {
	return tr.Times[i], tr.States[i]
}

// Series extracts the time series of a single state component.
func (tr *Trajectory) Series(i int) []float64 {
	out := make([]float64, len(tr.States))
	for k, s := range tr.States {
		out[k] = s[i]
	}
	return out
}

// Final returns the last sampled state, or nil for an empty trajectory.
func (tr *Trajectory) Final() State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}
