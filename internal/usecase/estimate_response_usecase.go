package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"movematch/internal/domain/entities"
	"movematch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrice        = errors.New("invalid estimate price")
	ErrDuplicateResponse   = errors.New("driver already responded to this request")
	ErrDriverNotDesignated = errors.New("driver not designated for this request")
)

// DefaultOpenEstimateLimit caps a driver's concurrently open, non-designated
// proposals when no explicit limit is configured.
const DefaultOpenEstimateLimit = 5

// ResponseLimitExceededError reports that a driver's open-response ceiling is
// reached. Limit and CurrentCount are carried for the caller's UI.
type ResponseLimitExceededError struct {
	Limit        int
	CurrentCount int
}

func (e *ResponseLimitExceededError) Error() string {
	return fmt.Sprintf("open estimate limit reached (%d/%d)", e.CurrentCount, e.Limit)
}

// IEstimateResponseUseCase is the invitation & response surface: a driver
// either proposes a priced estimate or declines the request, at most once
// per (driver, request) pair.

type IEstimateResponseUseCase interface {
	SubmitEstimate(ctx context.Context, driverID, requestID string, price float64, comment string) (entities.Estimate, error)
	RejectRequest(ctx context.Context, driverID, requestID, reason string) (entities.EstimateRejection, error)
}

type EstimateResponseUseCase struct {
	requests     interfaces.IMoveRequestRepository
	estimates    interfaces.IEstimateRepository
	rejections   interfaces.IRejectionRepository
	designations interfaces.IDesignationRepository
	notifier     interfaces.INotificationPublisher
	openLimit    int
}

var _ IEstimateResponseUseCase = (*EstimateResponseUseCase)(nil)

func NewEstimateResponseUseCase(
	requests interfaces.IMoveRequestRepository,
	estimates interfaces.IEstimateRepository,
	rejections interfaces.IRejectionRepository,
	designations interfaces.IDesignationRepository,
	notifier interfaces.INotificationPublisher,
	openLimit int,
) *EstimateResponseUseCase {
	if openLimit <= 0 {
		openLimit = DefaultOpenEstimateLimit
	}
	return &EstimateResponseUseCase{
		requests:     requests,
		estimates:    estimates,
		rejections:   rejections,
		designations: designations,
		notifier:     notifier,
		openLimit:    openLimit,
	}
}

func (u *EstimateResponseUseCase) SubmitEstimate(ctx context.Context, driverID, requestID string, price float64, comment string) (entities.Estimate, error) {
	driverID = strings.TrimSpace(driverID)
	requestID = strings.TrimSpace(requestID)
	if driverID == "" {
		return entities.Estimate{}, ErrInvalidDriverID
	}
	if requestID == "" {
		return entities.Estimate{}, ErrInvalidRequestID
	}
	if price <= 0 {
		return entities.Estimate{}, ErrInvalidPrice
	}

	req, err := u.openRequest(ctx, requestID)
	if err != nil {
		return entities.Estimate{}, err
	}

	if err := u.checkNotResponded(ctx, requestID, driverID); err != nil {
		return entities.Estimate{}, err
	}

	isDesignated, err := u.resolveDesignation(ctx, requestID, driverID)
	if err != nil {
		return entities.Estimate{}, err
	}

	// The open-response ceiling applies only to marketplace submissions;
	// an explicit invitation is always answerable.
	if !isDesignated {
		count, err := u.estimates.CountOpenByDriver(ctx, driverID)
		if err != nil {
			return entities.Estimate{}, err
		}
		if count >= u.openLimit {
			return entities.Estimate{}, &ResponseLimitExceededError{Limit: u.openLimit, CurrentCount: count}
		}
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:           uuid.NewString(),
		RequestID:    requestID,
		DriverID:     driverID,
		Price:        price,
		Comment:      strings.TrimSpace(comment),
		IsDesignated: isDesignated,
		Status:       entities.EstimateStatusProposed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.estimates.CreateProposed(ctx, e)
	if err != nil {
		// A concurrent response or state change can still beat us between the
		// reads above and the conditional commit.
		switch {
		case errors.Is(err, interfaces.ErrResponseExists):
			return entities.Estimate{}, ErrDuplicateResponse
		case errors.Is(err, interfaces.ErrRequestNotOpen):
			return entities.Estimate{}, ErrRequestNotPending
		}
		log.Printf("[estimate][usecase] submit failed request_id=%s driver_id=%s err=%v", requestID, driverID, err)
		return entities.Estimate{}, err
	}

	u.notify(ctx, entities.Notification{
		RecipientID: req.CustomerID,
		Kind:        entities.NotificationKindEstimateProposed,
		RequestID:   requestID,
	})
	return created, nil
}

func (u *EstimateResponseUseCase) RejectRequest(ctx context.Context, driverID, requestID, reason string) (entities.EstimateRejection, error) {
	driverID = strings.TrimSpace(driverID)
	requestID = strings.TrimSpace(requestID)
	if driverID == "" {
		return entities.EstimateRejection{}, ErrInvalidDriverID
	}
	if requestID == "" {
		return entities.EstimateRejection{}, ErrInvalidRequestID
	}

	if _, err := u.openRequest(ctx, requestID); err != nil {
		return entities.EstimateRejection{}, err
	}

	if err := u.checkNotResponded(ctx, requestID, driverID); err != nil {
		return entities.EstimateRejection{}, err
	}

	r := entities.EstimateRejection{
		ID:        uuid.NewString(),
		RequestID: requestID,
		DriverID:  driverID,
		Reason:    strings.TrimSpace(reason),
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.rejections.Create(ctx, r)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrResponseExists):
			return entities.EstimateRejection{}, ErrDuplicateResponse
		case errors.Is(err, interfaces.ErrRequestNotOpen):
			return entities.EstimateRejection{}, ErrRequestNotPending
		}
		log.Printf("[estimate][usecase] reject failed request_id=%s driver_id=%s err=%v", requestID, driverID, err)
		return entities.EstimateRejection{}, err
	}
	// No notification: a single decline stays invisible to the customer while
	// other drivers may still respond.
	return created, nil
}

func (u *EstimateResponseUseCase) openRequest(ctx context.Context, requestID string) (entities.MoveRequest, error) {
	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.MoveRequest{}, err
	}
	if req.ID == "" || !req.IsLive() {
		return entities.MoveRequest{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusPending {
		return entities.MoveRequest{}, ErrRequestNotPending
	}
	return req, nil
}

// checkNotResponded enforces mutual exclusion per (request, driver): a prior
// estimate or rejection blocks any further response.
func (u *EstimateResponseUseCase) checkNotResponded(ctx context.Context, requestID, driverID string) error {
	est, err := u.estimates.GetForDriver(ctx, requestID, driverID)
	if err != nil {
		return err
	}
	if est.ID != "" && est.IsLive() {
		return ErrDuplicateResponse
	}

	rej, err := u.rejections.GetForDriver(ctx, requestID, driverID)
	if err != nil {
		return err
	}
	if rej.ID != "" {
		return ErrDuplicateResponse
	}
	return nil
}

// resolveDesignation applies the invitation gate: an invited driver responds
// as designated; with invitations present an uninvited driver is turned away;
// with none the request is open marketplace.
func (u *EstimateResponseUseCase) resolveDesignation(ctx context.Context, requestID, driverID string) (bool, error) {
	invited, err := u.designations.ListByRequestID(ctx, requestID)
	if err != nil {
		return false, err
	}
	if len(invited) == 0 {
		return false, nil
	}
	for _, d := range invited {
		if d.DriverID == driverID {
			return true, nil
		}
	}
	return false, ErrDriverNotDesignated
}

func (u *EstimateResponseUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Publish(ctx, n); err != nil {
		log.Printf("[estimate][usecase] notification publish failed kind=%s request_id=%s err=%v", n.Kind, n.RequestID, err)
	}
}
