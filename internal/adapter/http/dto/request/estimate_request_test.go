package request

import (
	"errors"
	"testing"
)

func TestSubmitEstimateRequest_ResolveDriverID(t *testing.T) {
	r := SubmitEstimateRequest{DriverID: " drv-1 "}
	if got := r.ResolveDriverID(); got != "drv-1" {
		t.Fatalf("expected drv-1, got %q", got)
	}

	r2 := SubmitEstimateRequest{DriverID: "   "}
	if got := r2.ResolveDriverID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSubmitEstimateRequest_ResolvePrice(t *testing.T) {
	r := SubmitEstimateRequest{Price: 350.5}
	price, err := r.ResolvePrice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 350.5 {
		t.Fatalf("expected 350.5, got %v", price)
	}

	r2 := SubmitEstimateRequest{Price: 0}
	if _, err := r2.ResolvePrice(); !errors.Is(err, ErrInvalidEstimatePrice) {
		t.Fatalf("expected ErrInvalidEstimatePrice, got %v", err)
	}

	r3 := SubmitEstimateRequest{Price: -10}
	if _, err := r3.ResolvePrice(); !errors.Is(err, ErrInvalidEstimatePrice) {
		t.Fatalf("expected ErrInvalidEstimatePrice, got %v", err)
	}
}
