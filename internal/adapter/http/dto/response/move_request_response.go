package response

import (
	"time"

	"movematch/internal/domain/entities"
)

type MoveRequestResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	MoveType    string    `json:"move_type"`
	MoveDate    string    `json:"move_date"`
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromMoveRequest(r entities.MoveRequest) MoveRequestResponse {
	return MoveRequestResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		MoveType:    string(r.MoveType),
		MoveDate:    r.MoveDate.UTC().Format("2006-01-02"),
		FromAddress: r.FromAddress,
		ToAddress:   r.ToAddress,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type DesignationResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	DriverID  string    `json:"driver_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDesignation(d entities.DesignatedDriver) DesignationResponse {
	return DesignationResponse{
		ID:        d.ID,
		RequestID: d.RequestID,
		DriverID:  d.DriverID,
		CreatedAt: d.CreatedAt,
	}
}

// SweepResponse reports one full reconciliation pass.
type SweepResponse struct {
	CompletedCount int `json:"completed_count"`
}

// BacklogResponse reports how many requests currently match the completion
// predicate.
type BacklogResponse struct {
	PendingCount int `json:"pending_count"`
}
