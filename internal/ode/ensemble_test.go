package ode

import (
	"context"
	"errors"
	"testing"
)

func TestEnsembleRun(t *testing.T) {
	run := func(x0 State) (*Trajectory, error) {
		return &Trajectory{
			Times:  []float64{0, 1},
			States: []State{x0, x0.Scale(2)},
		}, nil
	}

	inits := []State{{1}, {2}, {3}, {4}}
	results, err := NewEnsemble(run).Run(context.Background(), inits)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != len(inits) {
		t.Fatalf("got %d results, want %d", len(results), len(inits))
	}
	for i, tr := range results {
		if got := tr.Final()[0]; got != inits[i][0]*2 {
			t.Errorf("run %d final = %v, want %v", i, got, inits[i][0]*2)
		}
	}
}

func TestEnsemblePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	run := func(x0 State) (*Trajectory, error) {
		if x0[0] == 2 {
			return nil, boom
		}
		return &Trajectory{Times: []float64{0}, States: []State{x0}}, nil
	}

	_, err := NewEnsemble(run).Run(context.Background(), []State{{1}, {2}, {3}})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestParallelFor(t *testing.T) {
	n := 1000
	out := make([]int, n)
	ParallelFor(n, 16, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = i * i
		}
	})

	for i := range out {
		if out[i] != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], i*i)
		}
	}
}
