package entities

import "time"

// DesignatedDriver is an explicit customer invitation linking one request to
// one driver. Its existence licenses the driver to respond even when the
// request does not appear in the open marketplace feed.
//
// Storage model (DynamoDB):
//   - PK: request_id, SK: driver_id (unique per pair)
type DesignatedDriver struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	DriverID  string    `json:"driver_id"`
	CreatedAt time.Time `json:"created_at"`
}
