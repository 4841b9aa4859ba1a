package request

import (
	"errors"
	"strings"
	"time"

	"movematch/internal/domain/entities"
)

var (
	ErrInvalidMoveDate = errors.New("invalid move date")
	ErrInvalidMoveType = errors.New("invalid move type")
)

const moveDateLayout = "2006-01-02"

// CreateMoveRequestRequest is the customer-facing payload for opening a new
// move request.
type CreateMoveRequestRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	MoveType    string `json:"move_type" binding:"required"`
	MoveDate    string `json:"move_date" binding:"required"`
	FromAddress string `json:"from_address" binding:"required"`
	ToAddress   string `json:"to_address" binding:"required"`
}

func (r CreateMoveRequestRequest) ResolveMoveType() (entities.MoveType, error) {
	mt := entities.MoveType(strings.ToUpper(strings.TrimSpace(r.MoveType)))
	switch mt {
	case entities.MoveTypeHome, entities.MoveTypeOffice, entities.MoveTypeSmall:
		return mt, nil
	}
	return "", ErrInvalidMoveType
}

func (r CreateMoveRequestRequest) ResolveMoveDate() (time.Time, error) {
	d, err := time.Parse(moveDateLayout, strings.TrimSpace(r.MoveDate))
	if err != nil {
		return time.Time{}, ErrInvalidMoveDate
	}
	return d.UTC(), nil
}

// DesignateDriverRequest invites one driver to respond to a request.
type DesignateDriverRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	DriverID   string `json:"driver_id" binding:"required"`
}
