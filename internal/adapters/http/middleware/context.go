// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// ContextLogger stores logger in the request context so later middleware
// and the quote service enrich and use the same instance.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logging.WithContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
