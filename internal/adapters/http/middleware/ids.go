package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// Headers that carry request identifiers.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxIDLength bounds accepted incoming identifiers.
const maxIDLength = 128

// requestIdentifier names one propagated id: its header and the key used
// for both the gin context and the log attribute.
type requestIdentifier struct {
	header string
	key    string
}

var (
	requestID     = requestIdentifier{header: HeaderRequestID, key: "request_id"}
	correlationID = requestIdentifier{header: HeaderCorrelationID, key: "correlation_id"}
)

// RequestID keeps a well-formed incoming X-Request-ID or assigns a UUID. The
// id is echoed in the response and attached to the request logger.
func RequestID() gin.HandlerFunc {
	return requestID.middleware()
}

// CorrelationID does the same for X-Correlation-ID, which a frontend reuses
// across the calls of one user action.
func CorrelationID() gin.HandlerFunc {
	return correlationID.middleware()
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestID.key)
}

// GetCorrelationID returns the id set by CorrelationID, or "".
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(correlationID.key)
}

func (r requestIdentifier) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(r.header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(r.key, id)
		c.Header(r.header, id)
		c.Request = c.Request.WithContext(logging.With(c.Request.Context(), slog.String(r.key, id)))

		c.Next()
	}
}

// validID accepts 1 to maxIDLength visible ASCII characters, so a header
// cannot inject spaces or control characters into logs.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}

	return true
}
