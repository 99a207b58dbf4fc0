package service

import (
	"context"
	"sync"

	"github.com/applyflow/outreach-system/internal/core/ports"
)

const defaultSendWorkers = 4

// fanOutSends runs send for every recipient on a bounded pool of workers
// and returns the results indexed by input position, so the caller's
// partition follows input order regardless of completion order. Each send
// is independent; one failing recipient never affects the others.
func fanOutSends(ctx context.Context, recipients []string, workers int, send func(ctx context.Context, recipient string) ports.SendResult) []ports.SendResult {
	if workers <= 0 {
		workers = defaultSendWorkers
	}
	if workers > len(recipients) {
		workers = len(recipients)
	}

	results := make([]ports.SendResult, len(recipients))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = send(ctx, recipients[i])
			}
		}()
	}

	for i := range recipients {
		select {
		case <-ctx.Done():
			// Remaining recipients are marked failed rather than left in
			// limbo; the partition must still cover the whole input.
			close(jobs)
			wg.Wait()
			for j := i; j < len(recipients); j++ {
				results[j] = ports.SendResult{Status: ports.StatusNetworkError, Err: ctx.Err()}
			}
			return results
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return results
}
