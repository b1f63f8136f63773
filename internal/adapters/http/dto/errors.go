// Package dto provides the request and response shapes of the HTTP API.
package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code such as "ALREADY_LIKED".
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details carries field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeAlreadyLiked = "ALREADY_LIKED"
	ErrorCodeConflict     = "CONFLICT"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeUnavailable  = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal     = "INTERNAL_ERROR"
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeBadRequest   = "BAD_REQUEST"
	ErrorCodeTooLarge     = "PAYLOAD_TOO_LARGE"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details

	return resp
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict, ErrorCodeAlreadyLiked:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrorCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps a domain error to a status code and error envelope.
// Unknown errors become a 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	switch {
	case err == nil:
		return http.StatusOK, nil

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	// Checked before the generic conflict: AlreadyLiked matches both.
	case domain.IsAlreadyLiked(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeAlreadyLiked, "you have already liked this quote")

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnavailable(err):
		// The cause may carry driver details; keep them in logs only.
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, "quote store unavailable")

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// GetTraceID returns the OpenTelemetry trace id of the request, if any.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// HandleError writes the envelope for err. Server-side failures are logged
// with the full error chain.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			"error", err.Error(),
			"status", status,
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}

// RespondWithErrorCode writes an envelope for adapter-level errors such as
// malformed input that never reached the domain.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 with field-level messages.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	).WithTraceID(GetTraceID(c)))
}
