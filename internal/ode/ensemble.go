package ode

import (
	"context"
	"runtime"
	"sync"
)

// RunFunc produces a trajectory from an initial state. Implementations must
// be safe to call from multiple goroutines.
type RunFunc func(x0 State) (*Trajectory, error)

// Ensemble runs independent solves in parallel, one per initial condition.
type Ensemble struct {
	run RunFunc
}

func NewEnsemble(run RunFunc) *Ensemble {
	return &Ensemble{run: run}
}

func (e *Ensemble) Run(ctx context.Context, inits []State) ([]*Trajectory, error) {
	results := make([]*Trajectory, len(inits))
	errs := make([]error, len(inits))

	var wg sync.WaitGroup
	for i := range inits {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}
			results[idx], errs[idx] = e.run(inits[idx].Clone())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ParallelFor executes fn over [0, n) in parallel chunks of at least minChunk.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
