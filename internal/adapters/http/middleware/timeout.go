package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// Timeout sets a deadline on the request context. Store calls observe it and
// fail as unavailable; if a handler returns past the deadline without writing,
// a TIMEOUT envelope is sent instead.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			handleTimeout(c, timeout)
		}
	}
}

func handleTimeout(c *gin.Context, timeout time.Duration) {
	logging.FromContext(c.Request.Context()).Warn("request timeout",
		slog.String("path", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
		slog.Duration("timeout", timeout),
	)

	dto.RespondWithErrorCode(c, dto.ErrorCodeTimeout, "request timeout exceeded")
	c.Abort()
}
