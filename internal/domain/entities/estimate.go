package entities

import "time"

// EstimateStatus represents the lifecycle of a driver's priced response.
//
// Domain notes:
//   - PROPOSED -> ACCEPTED happens at most once per request (single winner).
//   - Non-winning estimates stay PROPOSED; "not selected" is derived from the
//     parent request having left PENDING.

type EstimateStatus string

const (
	EstimateStatusProposed EstimateStatus = "PROPOSED"
	EstimateStatusAccepted EstimateStatus = "ACCEPTED"
	EstimateStatusRejected EstimateStatus = "REJECTED"
)

// Estimate is a driver's priced response to a move request.
//
// Storage model (DynamoDB):
//   - PK: request_id, SK: driver_id (enforces one response per pair)
//   - GSI1 (id-index): id
//   - GSI2 (driver_id-index): driver_id
//
// IsDesignated marks a response made against an explicit invitation; only
// non-designated responses count toward the driver's open-response limit.
type Estimate struct {
	ID           string         `json:"id"`
	RequestID    string         `json:"request_id"`
	DriverID     string         `json:"driver_id"`
	Price        float64        `json:"price"`
	Comment      string         `json:"comment"`
	IsDesignated bool           `json:"is_designated"`
	Status       EstimateStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty"`
}

// IsLive reports whether the estimate is visible to the engine.
func (e Estimate) IsLive() bool {
	return e.DeletedAt == nil
}
