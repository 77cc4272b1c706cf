package usecase

import (
	"context"
	"sync"
)

// scoringPool fans a fixed-size index space over a bounded set of workers.
// Scoring is pure per candidate, so workers write disjoint slots of the
// caller's result slice and no locking is needed.
type scoringPool struct {
	workers int
}

func newScoringPool(workers int) scoringPool {
	if workers <= 0 {
		workers = 4
	}
	return scoringPool{workers: workers}
}

func (p scoringPool) Map(ctx context.Context, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := p.workers
	if workers > n {
		workers = n
	}

	idx := make(chan int, n)
	for i := 0; i < n; i++ {
		idx <- i
	}
	close(idx)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-idx:
					if !ok {
						return
					}
					fn(i)
				}
			}
		}()
	}
	wg.Wait()
}
