package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"movematch/internal/domain/entities"
	"movematch/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound    = errors.New("estimate not found")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrEstimateNotProposed = errors.New("estimate already resolved")
)

// IAcceptanceUseCase commits the single winner: exactly one estimate per
// request may ever reach ACCEPTED, and doing so moves the request to APPROVED.

type IAcceptanceUseCase interface {
	AcceptEstimate(ctx context.Context, customerID, requestID, estimateID string) (entities.Estimate, error)
}

type AcceptanceUseCase struct {
	requests  interfaces.IMoveRequestRepository
	estimates interfaces.IEstimateRepository
	notifier  interfaces.INotificationPublisher
}

var _ IAcceptanceUseCase = (*AcceptanceUseCase)(nil)

func NewAcceptanceUseCase(requests interfaces.IMoveRequestRepository, estimates interfaces.IEstimateRepository, notifier interfaces.INotificationPublisher) *AcceptanceUseCase {
	return &AcceptanceUseCase{requests: requests, estimates: estimates, notifier: notifier}
}

// AcceptEstimate flips the chosen estimate to ACCEPTED and the request to
// APPROVED in one storage transaction. Sibling estimates are left at PROPOSED:
// once the request leaves PENDING no further acceptance is possible, so they
// are dead-lettered implicitly.
func (u *AcceptanceUseCase) AcceptEstimate(ctx context.Context, customerID, requestID, estimateID string) (entities.Estimate, error) {
	customerID = strings.TrimSpace(customerID)
	requestID = strings.TrimSpace(requestID)
	estimateID = strings.TrimSpace(estimateID)
	if customerID == "" {
		return entities.Estimate{}, ErrInvalidCustomerID
	}
	if requestID == "" {
		return entities.Estimate{}, ErrInvalidRequestID
	}
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if req.ID == "" || !req.IsLive() {
		return entities.Estimate{}, ErrRequestNotFound
	}
	if req.CustomerID != customerID {
		return entities.Estimate{}, ErrRequestNotOwned
	}
	if req.Status != entities.RequestStatusPending {
		return entities.Estimate{}, ErrRequestNotPending
	}

	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if est.ID == "" || !est.IsLive() || est.RequestID != requestID {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusProposed {
		return entities.Estimate{}, ErrEstimateNotProposed
	}

	accepted, err := u.estimates.Accept(ctx, requestID, est.DriverID)
	if err != nil {
		// Both statuses are re-checked at commit; a concurrent acceptance or
		// completion loses the race here.
		switch {
		case errors.Is(err, interfaces.ErrRequestNotOpen):
			return entities.Estimate{}, ErrRequestNotPending
		case errors.Is(err, interfaces.ErrEstimateNotOpen):
			return entities.Estimate{}, ErrEstimateNotProposed
		}
		log.Printf("[acceptance][usecase] accept failed request_id=%s estimate_id=%s err=%v", requestID, estimateID, err)
		return entities.Estimate{}, err
	}

	u.notify(ctx, entities.Notification{
		RecipientID: accepted.DriverID,
		Kind:        entities.NotificationKindEstimateAccepted,
		RequestID:   requestID,
	})
	return accepted, nil
}

func (u *AcceptanceUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Publish(ctx, n); err != nil {
		log.Printf("[acceptance][usecase] notification publish failed kind=%s request_id=%s err=%v", n.Kind, n.RequestID, err)
	}
}
