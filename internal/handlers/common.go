package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/logger"
	"github.com/siteforms/siteforms-api/internal/middleware"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	Details       string `json:"details,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// sendError is a helper function that combines logging and error response.
// It logs the error with the given message and sends a JSON error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	response := ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	}
	if err != nil {
		response.Details = err.Error()
	}

	c.JSON(statusCode, response)
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
