// Package controller provides the HTTP handlers binding request payloads to
// the domain services and mapping service outcomes to response statuses.
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/service"
)

// writeResult renders a service result, choosing okStatus for success and
// failStatus for a business failure.
func writeResult(c *gin.Context, res service.Result, okStatus, failStatus int) {
	if res.Success {
		c.JSON(okStatus, res)
		return
	}
	c.JSON(failStatus, res)
}

// serverError hides unexpected errors behind a generic envelope and logs the
// cause with the request's correlation ID.
func serverError(c *gin.Context, err error) {
	logger.Get().Error("request failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.Writer.Header().Get("X-Request-ID")),
	)
	c.JSON(http.StatusInternalServerError, service.FailField("general", "Internal server error"))
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, service.FailField("body", fmt.Sprintf("Invalid request body: %s", err.Error())))
}
