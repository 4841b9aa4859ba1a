package interfaces

import (
	"context"

	"movematch/internal/domain/entities"
)

// IDesignationRepository abstracts DynamoDB persistence for DesignatedDriver.

type IDesignationRepository interface {
	Create(ctx context.Context, d entities.DesignatedDriver) (entities.DesignatedDriver, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.DesignatedDriver, error)
	Exists(ctx context.Context, requestID, driverID string) (bool, error)
}
