package interfaces

import (
	"context"
	"time"

	"movematch/internal/domain/entities"
)

// IMoveRequestRepository abstracts DynamoDB persistence for MoveRequest.
//
// The engine needs to:
//   - create a request (customer creation authority)
//   - read a request by id (live rows only; soft-deleted rows read as absent)
//   - select a bounded, id-ordered chunk of requests whose move date elapsed
//   - complete exactly those ids, re-checking status row by row
//
// CompletableIDs and CountCompletable must share one eligibility predicate:
// status in {PENDING, APPROVED}, move_date < before, not soft-deleted.

type IMoveRequestRepository interface {
	Create(ctx context.Context, r entities.MoveRequest) (entities.MoveRequest, error)
	GetByID(ctx context.Context, id string) (entities.MoveRequest, error)
	CompletableIDs(ctx context.Context, before time.Time, limit int) ([]string, error)
	CountCompletable(ctx context.Context, before time.Time) (int, error)
	// Complete sets status=COMPLETED on each id whose status is still PENDING
	// or APPROVED and which is not soft-deleted, and returns the number of
	// rows actually updated. Ids stolen by a concurrent writer are skipped,
	// not errors.
	Complete(ctx context.Context, ids []string) (int, error)
}
