package interfaces

import (
	"context"

	"movematch/internal/domain/entities"
)

// INotificationPublisher abstracts the outbound notification boundary
// (e.g. RabbitMQ). Publishing happens after the state transition commits;
// the engine logs publish failures and moves on.
type INotificationPublisher interface {
	Publish(ctx context.Context, n entities.Notification) error
}
