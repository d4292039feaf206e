// Package workpool runs CPU-bound jobs across a bounded set of goroutines.
//
// Indexing is embarrassingly parallel across files: each job owns its own
// parser, Scope Tree, and Definition Builder, so the only shared state the
// pool needs to protect is the result collector.
package workpool

import (
	"context"
	"sync"

	"github.com/archlane/semindex/pkg/util"
)

// Job is a unit of work submitted to the Pool. It receives a context that is
// cancelled if the Pool's Run is cancelled before the job starts.
type Job func(ctx context.Context) error

// Pool runs jobs across a fixed number of worker goroutines.
type Pool struct {
	size int
}

// New creates a Pool with size workers. A size <= 0 uses
// util.GetOptimalPoolSize().
func New(size int) *Pool {
	if size <= 0 {
		size = util.GetOptimalPoolSize()
	}
	return &Pool{size: size}
}

// Size returns the number of workers this Pool runs jobs on.
func (p *Pool) Size() int {
	return p.size
}

// Run submits every job and blocks until all have completed or ctx is
// cancelled. It returns one error per job, in the same order jobs were
// given, with nil at indices whose job succeeded. A cancelled ctx causes
// not-yet-started jobs to fail with ctx.Err() instead of running.
func (p *Pool) Run(ctx context.Context, jobs []Job) []error {
	errs := make([]error, len(jobs))
	if len(jobs) == 0 {
		return errs
	}

	indices := make(chan int, len(jobs))
	for i := range jobs {
		indices <- i
	}
	close(indices)

	workers := p.size
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				select {
				case <-ctx.Done():
					errs[i] = ctx.Err()
					continue
				default:
				}
				errs[i] = jobs[i](ctx)
			}
		}()
	}
	wg.Wait()

	return errs
}
