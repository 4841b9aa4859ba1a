package response

import (
	"time"

	"movematch/internal/domain/entities"
)

type EstimateResponse struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	DriverID     string    `json:"driver_id"`
	Price        float64   `json:"price"`
	Comment      string    `json:"comment,omitempty"`
	IsDesignated bool      `json:"is_designated"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:           e.ID,
		RequestID:    e.RequestID,
		DriverID:     e.DriverID,
		Price:        e.Price,
		Comment:      e.Comment,
		IsDesignated: e.IsDesignated,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type RejectionResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	DriverID  string    `json:"driver_id"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromRejection(r entities.EstimateRejection) RejectionResponse {
	return RejectionResponse{
		ID:        r.ID,
		RequestID: r.RequestID,
		DriverID:  r.DriverID,
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt,
	}
}
