package usecase

import (
	"context"
	"log"
	"time"

	"movematch/internal/usecase/interfaces"
)

const (
	// CompletionBatchSize bounds one transactional chunk of the sweep.
	CompletionBatchSize = 100
	// CompletionMaxBatches is a liveness valve: the pass always returns
	// control after this many chunks, leaving any remainder for the next run.
	CompletionMaxBatches = 10
	// DefaultBatchPause spreads load between consecutive non-empty chunks.
	DefaultBatchPause = 200 * time.Millisecond

	backlogCacheKey = "completion:backlog"
	backlogCacheTTL = 30 * time.Second
)

// BatchResult reports one reconciliation chunk.
type BatchResult struct {
	RequestCount int `json:"request_count"`
}

// ICompletionUseCase is the batch completion reconciler: it advances every
// request whose move date lies strictly before the run's calendar day, and
// whose status is still PENDING or APPROVED, to COMPLETED.

type ICompletionUseCase interface {
	ProcessBatch(ctx context.Context, currentDate time.Time) (BatchResult, error)
	ProcessAllBatches(ctx context.Context, currentDate time.Time) (int, error)
	PendingCompletionCount(ctx context.Context, currentDate time.Time) (int, error)
}

type CompletionUseCase struct {
	requests interfaces.IMoveRequestRepository
	cache    interfaces.IBacklogCache
	pause    time.Duration
}

var _ ICompletionUseCase = (*CompletionUseCase)(nil)

func NewCompletionUseCase(requests interfaces.IMoveRequestRepository, cache interfaces.IBacklogCache) *CompletionUseCase {
	return &CompletionUseCase{requests: requests, cache: cache, pause: DefaultBatchPause}
}

// WithBatchPause overrides the inter-chunk pause.
func (u *CompletionUseCase) WithBatchPause(d time.Duration) *CompletionUseCase {
	u.pause = d
	return u
}

// startOfDay truncates to UTC midnight; the eligibility predicate throughout
// the pass is moveDate < startOfDay(currentDate).
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ProcessBatch runs one chunk: select up to CompletionBatchSize eligible ids
// in id order, then complete them with a status re-check per row. Running it
// again with no new eligible rows yields RequestCount 0.
func (u *CompletionUseCase) ProcessBatch(ctx context.Context, currentDate time.Time) (BatchResult, error) {
	today := startOfDay(currentDate)

	ids, err := u.requests.CompletableIDs(ctx, today, CompletionBatchSize)
	if err != nil {
		return BatchResult{}, err
	}
	if len(ids) == 0 {
		return BatchResult{}, nil
	}

	count, err := u.requests.Complete(ctx, ids)
	if err != nil {
		return BatchResult{}, err
	}
	log.Printf("[completion][usecase] chunk done selected=%d completed=%d", len(ids), count)
	return BatchResult{RequestCount: count}, nil
}

// ProcessAllBatches sweeps in bounded chunks until the backlog drains, a chunk
// completes nothing, or CompletionMaxBatches is hit. It returns the total
// completed across chunks. A failed chunk aborts the pass but leaves earlier
// chunks committed; its rows stay eligible for the next run.
func (u *CompletionUseCase) ProcessAllBatches(ctx context.Context, currentDate time.Time) (int, error) {
	total := 0
	for i := 0; i < CompletionMaxBatches; i++ {
		res, err := u.ProcessBatch(ctx, currentDate)
		if err != nil {
			return total, err
		}
		total += res.RequestCount
		if res.RequestCount == 0 {
			break
		}
		if u.pause > 0 {
			select {
			case <-ctx.Done():
				return total, ctx.Err()
			case <-time.After(u.pause):
			}
		}
	}
	return total, nil
}

// PendingCompletionCount reports the backlog using the exact selection
// predicate of ProcessBatch, so the gauge cannot drift from the real backlog.
// The Redis cache in front of it is best effort.
func (u *CompletionUseCase) PendingCompletionCount(ctx context.Context, currentDate time.Time) (int, error) {
	if u.cache != nil {
		if count, found, err := u.cache.GetCount(ctx, backlogCacheKey); err != nil {
			log.Printf("[completion][usecase] backlog cache read failed err=%v", err)
		} else if found {
			return count, nil
		}
	}

	count, err := u.requests.CountCompletable(ctx, startOfDay(currentDate))
	if err != nil {
		return 0, err
	}

	if u.cache != nil {
		if err := u.cache.SetCount(ctx, backlogCacheKey, count, backlogCacheTTL); err != nil {
			log.Printf("[completion][usecase] backlog cache write failed err=%v", err)
		}
	}
	return count, nil
}
