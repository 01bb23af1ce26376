package blob

import (
	"context"
	"sync"

	"github.com/4lucard7/BlogApi/internal/core/ports"
)

const defaultWorkers = 4

// deleteFunc removes a single remote object.
type deleteFunc func(ctx context.Context, remoteID string) error

// batchDeleter fans a batch of remote ids out over a fixed set of workers.
// Each id is deleted independently: a failure is recorded in its outcome and
// the remaining ids still proceed.
type batchDeleter struct {
	deleteOne deleteFunc
	workers   int
}

// newBatchDeleter creates a batchDeleter with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func newBatchDeleter(deleteOne deleteFunc, numWorkers int) *batchDeleter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &batchDeleter{deleteOne: deleteOne, workers: numWorkers}
}

// run deletes all ids and returns one outcome per id, in input order.
func (d *batchDeleter) run(ctx context.Context, remoteIDs []string) []ports.DeleteOutcome {
	outcomes := make([]ports.DeleteOutcome, len(remoteIDs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = ports.DeleteOutcome{
					RemoteID: remoteIDs[i],
					Err:      d.deleteOne(ctx, remoteIDs[i]),
				}
			}
		}()
	}

	for i := range remoteIDs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
