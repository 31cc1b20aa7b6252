package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/pgxguard/pgxguard/internal/report"
	"github.com/pgxguard/pgxguard/internal/risk"
)

// WorkItem is one drug evaluation request.
type WorkItem struct {
	Seq  int
	Drug risk.Drug
}

// WorkResult is the evaluation output for a single drug.
type WorkResult struct {
	Seq    int
	Drug   risk.Drug
	Result report.DrugResult
	Err    error
}

// parallelEvaluate evaluates work items using a pool of workers. Results are
// sent to the returned channel in arrival order; use orderedCollect to
// consume them in sequence order. If workers is 0, runtime.NumCPU() is used.
func parallelEvaluate(ctx context.Context, items <-chan WorkItem, workers int,
	eval func(context.Context, risk.Drug) (report.DrugResult, error)) <-chan WorkResult {

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				res, err := eval(ctx, item.Drug)
				results <- WorkResult{
					Seq:    item.Seq,
					Drug:   item.Drug,
					Result: res,
					Err:    err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// orderedCollect calls fn for each result in sequence-number order, buffering
// out-of-order results until the next expected sequence number arrives.
// Blocks until the results channel is closed.
func orderedCollect(results <-chan WorkResult, fn func(WorkResult)) {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			fn(rr)
			nextSeq++
		}
	}
}
