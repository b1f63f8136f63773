package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// Recovery returns middleware that turns a panic into a 500 with the
// standard error envelope and logs it with the stack trace.
//
// Apply it first so it covers every later handler.
func Recovery() gin.HandlerFunc {
	return RecoveryWithWriter(nil)
}

// RecoveryWithWriter is Recovery with an extra hook that receives the panic
// value and stack, for example to forward them to an error tracker.
func RecoveryWithWriter(stackHandler func(err any, stack []byte)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			stack := debug.Stack()
			if stackHandler != nil {
				stackHandler(r, stack)
			}

			traceID := dto.GetTraceID(c)

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(stack)),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.String("trace_id", traceID),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred").WithTraceID(traceID))
		}()

		c.Next()
	}
}
