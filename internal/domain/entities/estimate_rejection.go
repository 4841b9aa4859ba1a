package entities

import "time"

// EstimateRejection is a driver's explicit decline of a request. A pair
// (request, driver) may hold a rejection or a live estimate, never both.
//
// Storage model (DynamoDB):
//   - PK: request_id, SK: driver_id (unique per pair)
type EstimateRejection struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	DriverID  string    `json:"driver_id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
