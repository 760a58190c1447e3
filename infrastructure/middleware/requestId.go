package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with a correlation id so log lines
// from one request can be tied together.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set("RequestID", requestID)
		ctx.Writer.Header().Set("X-Request-Id", requestID)
		ctx.Next()
	}
}
