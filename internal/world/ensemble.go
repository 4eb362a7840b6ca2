package world

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrCanceled indicates a scripted run was interrupted by its context.
	ErrCanceled = errors.New("world: run canceled")
	// ErrNegativeRuns is returned by Ensemble when asked for fewer than zero runs.
	ErrNegativeRuns = errors.New("world: negative run count")
)

// Ensemble plays s for frames ticks on one world per seed, seeds
// seedStart to seedStart+runs-1, each on its own goroutine. build must
// return a fresh world for every seed. The last frame of each run is
// returned in seed order. Zero runs yield an empty result.
func Ensemble(ctx context.Context, runs int, seedStart int64, build func(seed int64) *World, s Script, frames int) ([]Frame, error) {
	if runs < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRuns, runs)
	}
	results := make([]Frame, runs)
	errs := make([]error, runs)

	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			w := build(seedStart + int64(idx))
			results[idx], errs[idx] = s.PlayContext(ctx, w, frames, nil)
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
