package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movematch/internal/adapter/http/handlers/mocks"
	"movematch/internal/domain/entities"
	"movematch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newMoveRequestRouter(h *MoveRequestHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/requests", h.CreateMoveRequest)
	r.GET("/v1/requests/:request_id", h.GetMoveRequest)
	r.POST("/v1/requests/:request_id/designations", h.DesignateDriver)
	return r
}

func TestMoveRequestHandler_CreateMoveRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown move type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"customer_id":"cust-1","move_type":"BOAT","move_date":"2025-08-15","from_address":"a","to_address":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed move date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"customer_id":"cust-1","move_type":"HOME","move_date":"15/08/2025","from_address":"a","to_address":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		moveDate := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().CreateMoveRequest(gomock.Any(), "cust-1", entities.MoveTypeHome, moveDate, "a", "b").Return(entities.MoveRequest{
			ID: "req-1", CustomerID: "cust-1", MoveType: entities.MoveTypeHome,
			MoveDate: moveDate, FromAddress: "a", ToAddress: "b",
			Status: entities.RequestStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"customer_id":"cust-1","move_type":"home","move_date":"2025-08-15","from_address":"a","to_address":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			ID       string `json:"id"`
			MoveDate string `json:"move_date"`
			Status   string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "req-1" || body.MoveDate != "2025-08-15" || body.Status != "PENDING" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestMoveRequestHandler_GetMoveRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		uc.EXPECT().GetMoveRequest(gomock.Any(), "req-1").Return(entities.MoveRequest{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		uc.EXPECT().GetMoveRequest(gomock.Any(), "req-1").Return(entities.MoveRequest{
			ID: "req-1", CustomerID: "cust-1", Status: entities.RequestStatusPending,
			MoveDate: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMoveRequestHandler_DesignateDriver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing driver id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/designations", bytes.NewBufferString(`{"customer_id":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already designated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		uc.EXPECT().DesignateDriver(gomock.Any(), "cust-1", "req-1", "drv-1").Return(entities.DesignatedDriver{}, usecase.ErrDriverAlreadyDesignated)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/designations", bytes.NewBufferString(`{"customer_id":"cust-1","driver_id":"drv-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		uc.EXPECT().DesignateDriver(gomock.Any(), "cust-2", "req-1", "drv-1").Return(entities.DesignatedDriver{}, usecase.ErrRequestNotOwned)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/designations", bytes.NewBufferString(`{"customer_id":"cust-2","driver_id":"drv-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoveRequestUseCase(ctrl)
		h := NewMoveRequestHandler(uc)
		r := newMoveRequestRouter(h)

		uc.EXPECT().DesignateDriver(gomock.Any(), "cust-1", "req-1", "drv-1").Return(entities.DesignatedDriver{
			ID: "des-1", RequestID: "req-1", DriverID: "drv-1", CreatedAt: time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/designations", bytes.NewBufferString(`{"customer_id":"cust-1","driver_id":"drv-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
