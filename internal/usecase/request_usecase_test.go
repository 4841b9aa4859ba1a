package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movematch/internal/domain/entities"
	"movematch/internal/usecase/interfaces"
	mock_interfaces "movematch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMoveRequestUseCase_CreateMoveRequest(t *testing.T) {
	moveDate := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewMoveRequestUseCase(nil, nil)
		_, err := uc.CreateMoveRequest(context.Background(), " ", entities.MoveTypeHome, moveDate, "a", "b")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("invalid move type", func(t *testing.T) {
		uc := NewMoveRequestUseCase(nil, nil)
		_, err := uc.CreateMoveRequest(context.Background(), "cust-1", entities.MoveType("BOAT"), moveDate, "a", "b")
		if !errors.Is(err, ErrInvalidMoveType) {
			t.Fatalf("expected ErrInvalidMoveType, got %v", err)
		}
	})

	t.Run("invalid move date", func(t *testing.T) {
		uc := NewMoveRequestUseCase(nil, nil)
		_, err := uc.CreateMoveRequest(context.Background(), "cust-1", entities.MoveTypeHome, time.Time{}, "a", "b")
		if !errors.Is(err, ErrInvalidMoveDate) {
			t.Fatalf("expected ErrInvalidMoveDate, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, nil)

		requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.MoveRequest{}, errors.New("db"))

		_, err := uc.CreateMoveRequest(context.Background(), "cust-1", entities.MoveTypeHome, moveDate, "a", "b")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, nil)

		requests.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.MoveRequest{})).DoAndReturn(
			func(_ context.Context, r entities.MoveRequest) (entities.MoveRequest, error) {
				if r.ID == "" || r.CustomerID != "cust-1" || r.Status != entities.RequestStatusPending {
					t.Fatalf("unexpected request: %+v", r)
				}
				if !r.MoveDate.Equal(moveDate) || r.FromAddress != "from" || r.ToAddress != "to" {
					t.Fatalf("unexpected request fields: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.CreateMoveRequest(context.Background(), " cust-1 ", entities.MoveTypeHome, moveDate, " from ", " to ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestMoveRequestUseCase_GetMoveRequest(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewMoveRequestUseCase(nil, nil)
		_, err := uc.GetMoveRequest(context.Background(), "")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, nil)

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.MoveRequest{}, nil)

		_, err := uc.GetMoveRequest(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("soft-deleted request is invisible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, nil)

		deleted := time.Now()
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.MoveRequest{ID: "req-1", DeletedAt: &deleted}, nil)

		_, err := uc.GetMoveRequest(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, nil)

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest("req-1", "cust-1"), nil)

		res, err := uc.GetMoveRequest(context.Background(), " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "req-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestMoveRequestUseCase_DesignateDriver(t *testing.T) {
	t.Run("invalid driver id", func(t *testing.T) {
		uc := NewMoveRequestUseCase(nil, nil)
		_, err := uc.DesignateDriver(context.Background(), "cust-1", "req-1", " ")
		if !errors.Is(err, ErrInvalidDriverID) {
			t.Fatalf("expected ErrInvalidDriverID, got %v", err)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, nil)

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest("req-1", "cust-2"), nil)

		_, err := uc.DesignateDriver(context.Background(), "cust-1", "req-1", "drv-1")
		if !errors.Is(err, ErrRequestNotOwned) {
			t.Fatalf("expected ErrRequestNotOwned, got %v", err)
		}
	})

	t.Run("request not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, nil)

		req := pendingRequest("req-1", "cust-1")
		req.Status = entities.RequestStatusApproved
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)

		_, err := uc.DesignateDriver(context.Background(), "cust-1", "req-1", "drv-1")
		if !errors.Is(err, ErrRequestNotPending) {
			t.Fatalf("expected ErrRequestNotPending, got %v", err)
		}
	})

	t.Run("driver already designated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		designations := mock_interfaces.NewMockIDesignationRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, designations)

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest("req-1", "cust-1"), nil)
		designations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DesignatedDriver{}, interfaces.ErrDesignationExists)

		_, err := uc.DesignateDriver(context.Background(), "cust-1", "req-1", "drv-1")
		if !errors.Is(err, ErrDriverAlreadyDesignated) {
			t.Fatalf("expected ErrDriverAlreadyDesignated, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		designations := mock_interfaces.NewMockIDesignationRepository(ctrl)
		uc := NewMoveRequestUseCase(requests, designations)

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest("req-1", "cust-1"), nil)
		designations.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.DesignatedDriver{})).DoAndReturn(
			func(_ context.Context, d entities.DesignatedDriver) (entities.DesignatedDriver, error) {
				if d.ID == "" || d.RequestID != "req-1" || d.DriverID != "drv-1" {
					t.Fatalf("unexpected designation: %+v", d)
				}
				return d, nil
			},
		)

		res, err := uc.DesignateDriver(context.Background(), " cust-1 ", " req-1 ", " drv-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.DriverID != "drv-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
