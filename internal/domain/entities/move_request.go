package entities

import "time"

// RequestStatus represents the lifecycle of a move request.
//
// Domain notes:
//   - Transitions are strictly forward: PENDING -> APPROVED -> COMPLETED.
//   - COMPLETED is terminal. The batch reconciler may jump PENDING -> COMPLETED
//     directly when a request was never answered before its move date elapsed.

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusCompleted RequestStatus = "COMPLETED"
)

// MoveType classifies the kind of move being requested.

type MoveType string

const (
	MoveTypeHome   MoveType = "HOME"
	MoveTypeOffice MoveType = "OFFICE"
	MoveTypeSmall  MoveType = "SMALL"
)

// MoveRequest is a customer's move-service request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status / move_date
//
// Soft delete:
//   - DeletedAt non-nil excludes the record from every engine query.
//     Repositories filter on attribute_not_exists(deleted_at); callers use IsLive.
type MoveRequest struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	MoveType    MoveType      `json:"move_type"`
	MoveDate    time.Time     `json:"move_date"`
	FromAddress string        `json:"from_address"`
	ToAddress   string        `json:"to_address"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty"`
}

// IsLive reports whether the request is visible to the engine.
func (r MoveRequest) IsLive() bool {
	return r.DeletedAt == nil
}
