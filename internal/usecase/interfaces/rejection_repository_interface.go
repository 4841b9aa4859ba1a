package interfaces

import (
	"context"

	"movematch/internal/domain/entities"
)

// IRejectionRepository abstracts DynamoDB persistence for EstimateRejection.
//
// Create is a multi-item transaction mirroring IEstimateRepository.CreateProposed:
// it puts the rejection and condition-checks that no estimate exists for the
// same (request, driver) pair and that the request is still PENDING and live.

type IRejectionRepository interface {
	Create(ctx context.Context, r entities.EstimateRejection) (entities.EstimateRejection, error)
	GetForDriver(ctx context.Context, requestID, driverID string) (entities.EstimateRejection, error)
}
