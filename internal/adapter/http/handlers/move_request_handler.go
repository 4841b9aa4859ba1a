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

var errInvalidMoveRequestPayload = pkg.NewDomainErrorSimple("INVALID_MOVE_REQUEST_INPUT", "Invalid move request payload", http.StatusBadRequest)

// MoveRequestHandler handles the customer-facing request surface: creation,
// lookup, and designated-driver invitations.

type MoveRequestHandler struct {
	usecase usecase.IMoveRequestUseCase
}

func NewMoveRequestHandler(uc usecase.IMoveRequestUseCase) *MoveRequestHandler {
	return &MoveRequestHandler{usecase: uc}
}

func (h *MoveRequestHandler) CreateMoveRequest(c *gin.Context) {
	var payload request.CreateMoveRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMoveRequestPayload.HTTPStatus, errInvalidMoveRequestPayload.ToHTTPError())
		return
	}

	moveType, err := payload.ResolveMoveType()
	if err != nil {
		c.JSON(errInvalidMoveRequestPayload.HTTPStatus, errInvalidMoveRequestPayload.ToHTTPError())
		return
	}
	moveDate, err := payload.ResolveMoveDate()
	if err != nil {
		c.JSON(errInvalidMoveRequestPayload.HTTPStatus, errInvalidMoveRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.CreateMoveRequest(c.Request.Context(), payload.CustomerID, moveType, moveDate, payload.FromAddress, payload.ToAddress)
	if err != nil {
		appErr := mapMoveRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMoveRequest(req))
}

func (h *MoveRequestHandler) GetMoveRequest(c *gin.Context) {
	id := strings.TrimSpace(c.Param("request_id"))

	req, err := h.usecase.GetMoveRequest(c.Request.Context(), id)
	if err != nil {
		appErr := mapMoveRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMoveRequest(req))
}

func (h *MoveRequestHandler) DesignateDriver(c *gin.Context) {
	requestID := strings.TrimSpace(c.Param("request_id"))
	if requestID == "" {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	var payload request.DesignateDriverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMoveRequestPayload.HTTPStatus, errInvalidMoveRequestPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.DesignateDriver(c.Request.Context(), payload.CustomerID, requestID, payload.DriverID)
	if err != nil {
		appErr := mapMoveRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDesignation(d))
}

func mapMoveRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidDriverID),
		errors.Is(err, usecase.ErrInvalidMoveType),
		errors.Is(err, usecase.ErrInvalidMoveDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Move request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotPending):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_PENDING", "Move request is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotOwned):
		return pkg.NewDomainErrorSimple("NOT_REQUEST_OWNER", "Move request is owned by another customer", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDriverAlreadyDesignated):
		return pkg.NewDomainErrorSimple("ALREADY_DESIGNATED", "Driver already designated for this request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
