package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"movematch/internal/domain/entities"
	"movematch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound         = errors.New("move request not found")
	ErrRequestNotPending       = errors.New("move request is not pending")
	ErrRequestNotOwned         = errors.New("move request is owned by another customer")
	ErrInvalidRequestID        = errors.New("invalid request id")
	ErrInvalidCustomerID       = errors.New("invalid customer id")
	ErrInvalidDriverID         = errors.New("invalid driver id")
	ErrInvalidMoveType         = errors.New("invalid move type")
	ErrInvalidMoveDate         = errors.New("invalid move date")
	ErrDriverAlreadyDesignated = errors.New("driver already designated for this request")
)

// IMoveRequestUseCase exposes the customer-facing request surface: creating a
// request, reading it back, and recording designated-driver invitations.

type IMoveRequestUseCase interface {
	CreateMoveRequest(ctx context.Context, customerID string, moveType entities.MoveType, moveDate time.Time, fromAddress, toAddress string) (entities.MoveRequest, error)
	GetMoveRequest(ctx context.Context, id string) (entities.MoveRequest, error)
	DesignateDriver(ctx context.Context, customerID, requestID, driverID string) (entities.DesignatedDriver, error)
}

type MoveRequestUseCase struct {
	requests     interfaces.IMoveRequestRepository
	designations interfaces.IDesignationRepository
}

var _ IMoveRequestUseCase = (*MoveRequestUseCase)(nil)

func NewMoveRequestUseCase(requests interfaces.IMoveRequestRepository, designations interfaces.IDesignationRepository) *MoveRequestUseCase {
	return &MoveRequestUseCase{requests: requests, designations: designations}
}

func (u *MoveRequestUseCase) CreateMoveRequest(ctx context.Context, customerID string, moveType entities.MoveType, moveDate time.Time, fromAddress, toAddress string) (entities.MoveRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.MoveRequest{}, ErrInvalidCustomerID
	}
	switch moveType {
	case entities.MoveTypeHome, entities.MoveTypeOffice, entities.MoveTypeSmall:
	default:
		return entities.MoveRequest{}, ErrInvalidMoveType
	}
	if moveDate.IsZero() {
		return entities.MoveRequest{}, ErrInvalidMoveDate
	}

	now := time.Now().UTC()
	r := entities.MoveRequest{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		MoveType:    moveType,
		MoveDate:    moveDate.UTC(),
		FromAddress: strings.TrimSpace(fromAddress),
		ToAddress:   strings.TrimSpace(toAddress),
		Status:      entities.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.requests.Create(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] create failed customer_id=%s err=%v", customerID, err)
		return entities.MoveRequest{}, err
	}
	return created, nil
}

func (u *MoveRequestUseCase) GetMoveRequest(ctx context.Context, id string) (entities.MoveRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MoveRequest{}, ErrInvalidRequestID
	}

	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.MoveRequest{}, err
	}
	if r.ID == "" || !r.IsLive() {
		return entities.MoveRequest{}, ErrRequestNotFound
	}
	return r, nil
}

// DesignateDriver records an invitation. Only the owning customer may invite,
// and only while the request is still PENDING.
func (u *MoveRequestUseCase) DesignateDriver(ctx context.Context, customerID, requestID, driverID string) (entities.DesignatedDriver, error) {
	customerID = strings.TrimSpace(customerID)
	requestID = strings.TrimSpace(requestID)
	driverID = strings.TrimSpace(driverID)
	if customerID == "" {
		return entities.DesignatedDriver{}, ErrInvalidCustomerID
	}
	if requestID == "" {
		return entities.DesignatedDriver{}, ErrInvalidRequestID
	}
	if driverID == "" {
		return entities.DesignatedDriver{}, ErrInvalidDriverID
	}

	req, err := u.GetMoveRequest(ctx, requestID)
	if err != nil {
		return entities.DesignatedDriver{}, err
	}
	if req.CustomerID != customerID {
		return entities.DesignatedDriver{}, ErrRequestNotOwned
	}
	if req.Status != entities.RequestStatusPending {
		return entities.DesignatedDriver{}, ErrRequestNotPending
	}

	d := entities.DesignatedDriver{
		ID:        uuid.NewString(),
		RequestID: requestID,
		DriverID:  driverID,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.designations.Create(ctx, d)
	if err != nil {
		if errors.Is(err, interfaces.ErrDesignationExists) {
			return entities.DesignatedDriver{}, ErrDriverAlreadyDesignated
		}
		log.Printf("[request][usecase] designate failed request_id=%s driver_id=%s err=%v", requestID, driverID, err)
		return entities.DesignatedDriver{}, err
	}
	return created, nil
}
