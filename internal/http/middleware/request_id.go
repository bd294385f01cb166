package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"journalflow.app/editorial/common/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID propagates the caller's request id, or mints one, and attaches
// it to the response and to every log line written for the request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}

		c.Header(RequestIDHeader, requestID)
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: &requestID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
