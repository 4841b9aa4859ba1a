package request

import (
	"errors"
	"strings"
)

var ErrInvalidEstimatePrice = errors.New("invalid estimate price")

// SubmitEstimateRequest is the driver-facing payload for proposing a priced
// estimate against a request.
type SubmitEstimateRequest struct {
	DriverID string  `json:"driver_id" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Comment  string  `json:"comment"`
}

func (r SubmitEstimateRequest) ResolveDriverID() string {
	return strings.TrimSpace(r.DriverID)
}

func (r SubmitEstimateRequest) ResolvePrice() (float64, error) {
	if r.Price > 0 {
		return r.Price, nil
	}
	return 0, ErrInvalidEstimatePrice
}

// RejectRequestRequest is the driver-facing payload for declining a request.
type RejectRequestRequest struct {
	DriverID string `json:"driver_id" binding:"required"`
	Reason   string `json:"reason"`
}

// AcceptEstimateRequest is the customer-facing payload for choosing the
// winning estimate.
type AcceptEstimateRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	EstimateID string `json:"estimate_id" binding:"required"`
}
