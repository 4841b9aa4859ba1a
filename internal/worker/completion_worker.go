package worker

import (
	"context"
	"log"
	"time"

	"movematch/internal/usecase"
)

// DefaultSweepInterval is how often the reconciliation pass runs when
// COMPLETION_INTERVAL is not configured.
const DefaultSweepInterval = time.Hour

// CompletionWorker runs the batch completion reconciler on an interval.
// One active instance per deployment is assumed; a second instance is safe
// for correctness (the store re-checks status on update) but wastes work.

type CompletionWorker struct {
	completion usecase.ICompletionUseCase
	interval   time.Duration
}

func NewCompletionWorker(completion usecase.ICompletionUseCase, interval time.Duration) *CompletionWorker {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CompletionWorker{completion: completion, interval: interval}
}

// Start launches the sweep loop. It runs once immediately, then on every
// tick, until ctx is canceled.
func (w *CompletionWorker) Start(ctx context.Context) {
	go func() {
		w.sweep(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[completion][worker] stopped")
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
}

func (w *CompletionWorker) sweep(ctx context.Context) {
	total, err := w.completion.ProcessAllBatches(ctx, time.Now())
	if err != nil {
		// Fail forward: committed chunks stay committed, the rest is picked
		// up by the next tick.
		log.Printf("[completion][worker] sweep aborted completed=%d err=%v", total, err)
		return
	}
	if total > 0 {
		log.Printf("[completion][worker] sweep done completed=%d", total)
	}
}
