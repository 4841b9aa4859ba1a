package handlers

import (
	"net/http"
	"time"

	response "movematch/internal/adapter/http/dto/response"
	"movematch/internal/usecase"
	"movematch/pkg"

	"github.com/gin-gonic/gin"
)

// CompletionHandler exposes the batch completion reconciler: an on-demand
// sweep trigger and the backlog gauge for dashboards and health checks.
// The scheduled sweep normally runs in the background worker; the trigger
// exists for operations.

type CompletionHandler struct {
	usecase usecase.ICompletionUseCase
}

func NewCompletionHandler(uc usecase.ICompletionUseCase) *CompletionHandler {
	return &CompletionHandler{usecase: uc}
}

func (h *CompletionHandler) RunSweep(c *gin.Context) {
	total, err := h.usecase.ProcessAllBatches(c.Request.Context(), time.Now())
	if err != nil {
		// Committed chunks stay committed; report the failure generically and
		// keep the diagnostic detail in logs.
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Completion sweep failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SweepResponse{CompletedCount: total})
}

func (h *CompletionHandler) Backlog(c *gin.Context) {
	count, err := h.usecase.PendingCompletionCount(c.Request.Context(), time.Now())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Backlog count failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BacklogResponse{PendingCount: count})
}
