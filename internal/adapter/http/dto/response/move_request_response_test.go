package response

import (
	"testing"
	"time"

	"movematch/internal/domain/entities"
)

func TestFromMoveRequest(t *testing.T) {
	now := time.Now().UTC()
	r := entities.MoveRequest{
		ID:          "req-1",
		CustomerID:  "cust-1",
		MoveType:    entities.MoveTypeOffice,
		MoveDate:    time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		FromAddress: "from",
		ToAddress:   "to",
		Status:      entities.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromMoveRequest(r)
	if res.ID != "req-1" || res.CustomerID != "cust-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.MoveType != "OFFICE" || res.MoveDate != "2025-08-15" || res.Status != "PENDING" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.FromAddress != "from" || res.ToAddress != "to" {
		t.Fatalf("unexpected addresses: %+v", res)
	}
}

func TestFromDesignation(t *testing.T) {
	now := time.Now().UTC()
	d := entities.DesignatedDriver{
		ID:        "des-1",
		RequestID: "req-1",
		DriverID:  "drv-1",
		CreatedAt: now,
	}

	res := FromDesignation(d)
	if res.ID != "des-1" || res.RequestID != "req-1" || res.DriverID != "drv-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}
