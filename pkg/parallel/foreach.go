package parallel

import (
	"context"
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-raceway/pkg/logging"
)

// ErrTaskPanicked is returned by ForEach when at least one item panicked.
var ErrTaskPanicked = errors.New("task panicked")

// ForEach calls fn for every index in [0, n) on a fresh pool of the given
// size and blocks until all calls return. fn must only write state owned by
// its index. ctx is checked before each item is queued and again before it
// runs; once cancelled, remaining items are skipped and ctx.Err() is returned.
func ForEach(ctx context.Context, workers, n int, logger logging.Logger, fn func(i int)) error {
	if n == 0 {
		return ctx.Err()
	}
	if workers > n {
		workers = n
	}

	pool, err := NewWorkerPool(workers, logger)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		idx := i
		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			fn(idx)
		})
	}
	pool.Close()

	if err := ctx.Err(); err != nil {
		return err
	}
	if p := pool.Panics(); p > 0 {
		return fmt.Errorf("%w: %d of %d items", ErrTaskPanicked, p, n)
	}
	return nil
}
