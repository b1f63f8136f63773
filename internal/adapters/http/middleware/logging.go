package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// Logging writes one access log line per request once it completes.
// Probes under /-/, GET /health and any path in skip are not logged.
// 4xx responses log at warn and 5xx at error.
func Logging(skip ...string) gin.HandlerFunc {
	quiet := map[string]bool{"/health": true}
	for _, p := range skip {
		quiet[p] = true
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if quiet[path] || strings.HasPrefix(path, "/-/") {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		ctx := c.Request.Context()

		logging.FromContext(ctx).LogAttrs(ctx, levelFor(c.Writer.Status()), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.RequestURI()),
			slog.String("route", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Int64("latency_ms", elapsed.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("user_ip", CallerIP(c)),
		)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// CallerIP is the address a like is recorded against: the first
// X-Forwarded-For hop when present, otherwise gin's client address.
func CallerIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	return c.ClientIP()
}
