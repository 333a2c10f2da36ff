package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aixtrade/nothing/internal/infrastructure/observability/metrics"
	"github.com/Aixtrade/nothing/internal/interfaces/http/dto"
)

// Recovery turns a handler panic into a logged event and hands the request to
// fallback. A nil fallback answers 500 with an error body.
func Recovery(logger *zap.Logger, listener string, fallback gin.HandlerFunc) gin.HandlerFunc {
	if fallback == nil {
		fallback = internalError
	}
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("listener", listener),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", GetRequestID(c)),
					zap.Any("panic", r),
				)
				metrics.RecordPanic(listener)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				fallback(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "internal server error",
		Code:  "INTERNAL_ERROR",
	})
}
