package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "movematch/internal/adapter/http/dto/request"
	response "movematch/internal/adapter/http/dto/response"
	"movematch/internal/usecase"
	"movematch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidRequestID       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request id", http.StatusBadRequest)
)

// EstimateHandler handles the driver response and customer acceptance
// operations of the estimate lifecycle.

type EstimateHandler struct {
	responses  usecase.IEstimateResponseUseCase
	acceptance usecase.IAcceptanceUseCase
}

func NewEstimateHandler(responses usecase.IEstimateResponseUseCase, acceptance usecase.IAcceptanceUseCase) *EstimateHandler {
	return &EstimateHandler{responses: responses, acceptance: acceptance}
}

// SubmitEstimate lets a driver propose a priced estimate against a request.
func (h *EstimateHandler) SubmitEstimate(c *gin.Context) {
	requestID := strings.TrimSpace(c.Param("request_id"))
	if requestID == "" {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	var payload request.SubmitEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.responses.SubmitEstimate(c.Request.Context(), payload.ResolveDriverID(), requestID, price, payload.Comment)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// RejectRequest lets a driver decline a request; the decline removes the
// request from the driver's open-work view without touching its status.
func (h *EstimateHandler) RejectRequest(c *gin.Context) {
	requestID := strings.TrimSpace(c.Param("request_id"))
	if requestID == "" {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	var payload request.RejectRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	rejection, err := h.responses.RejectRequest(c.Request.Context(), payload.DriverID, requestID, payload.Reason)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRejection(rejection))
}

// AcceptEstimate lets the owning customer choose the winning estimate.
func (h *EstimateHandler) AcceptEstimate(c *gin.Context) {
	requestID := strings.TrimSpace(c.Param("request_id"))
	if requestID == "" {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	var payload request.AcceptEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.acceptance.AcceptEstimate(c.Request.Context(), payload.CustomerID, requestID, payload.EstimateID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	var limitErr *usecase.ResponseLimitExceededError
	switch {
	case errors.As(err, &limitErr):
		return pkg.NewDomainErrorSimple("RESPONSE_LIMIT_EXCEEDED", "Open estimate limit reached", http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"limit": limitErr.Limit, "current_count": limitErr.CurrentCount})
	case errors.Is(err, usecase.ErrInvalidDriverID),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Move request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotPending):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_PENDING", "Move request is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotProposed):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_RESOLVED", "Estimate already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateResponse):
		return pkg.NewDomainErrorSimple("DUPLICATE_RESPONSE", "Driver already responded to this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrDriverNotDesignated):
		return pkg.NewDomainErrorSimple("NOT_DESIGNATED", "Driver not designated for this request", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotOwned):
		return pkg.NewDomainErrorSimple("NOT_REQUEST_OWNER", "Move request is owned by another customer", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
