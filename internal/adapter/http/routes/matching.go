package routes

import (
	"movematch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests    = "/requests"
	PathCompletions = "/completions"
)

func addMatchingRoutes(rg *gin.RouterGroup, requestHandler *handlers.MoveRequestHandler, estimateHandler *handlers.EstimateHandler, completionHandler *handlers.CompletionHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateMoveRequest)
		requests.GET("/:request_id", requestHandler.GetMoveRequest)
		requests.POST("/:request_id/designations", requestHandler.DesignateDriver)

		// Driver responses: propose or decline, at most once per driver.
		requests.POST("/:request_id/estimates", estimateHandler.SubmitEstimate)
		requests.POST("/:request_id/rejections", estimateHandler.RejectRequest)

		// Customer acceptance of the single winner.
		requests.PATCH("/:request_id/accept", estimateHandler.AcceptEstimate)
	}

	completions := rg.Group(PathCompletions)
	{
		completions.POST("/sweep", completionHandler.RunSweep)
		completions.GET("/backlog", completionHandler.Backlog)
	}
}
