package interfaces

import (
	"context"

	"movematch/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// CreateProposed and Accept are multi-item transactions (TransactWriteItems):
//
//   - CreateProposed puts the estimate, condition-checks that no rejection
//     exists for the same (request, driver) pair and that the parent request
//     is still PENDING and live. Condition failures surface as
//     ErrResponseExists / ErrRequestNotOpen.
//   - Accept flips the estimate PROPOSED -> ACCEPTED and the parent request
//     PENDING -> APPROVED in one transaction, re-checking both statuses at
//     commit time. Condition failures surface as ErrEstimateNotOpen /
//     ErrRequestNotOpen.

type IEstimateRepository interface {
	CreateProposed(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetForDriver(ctx context.Context, requestID, driverID string) (entities.Estimate, error)
	// CountOpenByDriver counts the driver's live, non-designated estimates
	// still in PROPOSED (the open-response-limit basis).
	CountOpenByDriver(ctx context.Context, driverID string) (int, error)
	Accept(ctx context.Context, requestID, driverID string) (entities.Estimate, error)
}
