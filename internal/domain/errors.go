// Package domain holds the Quote entity, its validation rules and the error
// kinds the quote store reports. Nothing here knows about HTTP; the adapters
// translate these kinds to status codes.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match them with errors.Is or the Is* helpers.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrAlreadyLiked = errors.New("already liked")
	ErrValidation   = errors.New("validation failed")
	ErrUnavailable  = errors.New("unavailable")
)

// NotFoundError names what was missing. ID is empty when the lookup had no
// key, such as a random or top quote from an empty store.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return "no " + e.Entity + " found"
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// AlreadyLikedError is returned when a caller likes the same quote twice.
// It is also a conflict, so generic conflict handling still applies.
type AlreadyLikedError struct {
	QuoteID string
	UserIP  string
}

func (e *AlreadyLikedError) Error() string {
	return fmt.Sprintf("%s already liked quote %q", e.UserIP, e.QuoteID)
}

func (e *AlreadyLikedError) Unwrap() []error {
	return []error{ErrAlreadyLiked, ErrConflict}
}

// NewAlreadyLikedError reports a duplicate like by userIP.
func NewAlreadyLikedError(quoteID, userIP string) error {
	return &AlreadyLikedError{QuoteID: quoteID, UserIP: userIP}
}

// ValidationError rejects caller input. Field is the JSON field at fault,
// or "body" when no single field is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + " " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError reports invalid input for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError wraps a storage failure. Reason names the store operation
// that failed; the driver error stays reachable as Cause.
type UnavailableError struct {
	Service string
	Reason  string
	Cause   error
}

func (e *UnavailableError) Error() string {
	parts := []string{e.Service + " unavailable"}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *UnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnavailable}
	}

	return []error{ErrUnavailable, e.Cause}
}

// NewUnavailableError reports that service failed during reason.
func NewUnavailableError(service, reason string, cause error) error {
	return &UnavailableError{Service: service, Reason: reason, Cause: cause}
}

// IsNotFound and the helpers below match a kind anywhere in err's chain.
func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsAlreadyLiked(err error) bool { return errors.Is(err, ErrAlreadyLiked) }
func IsConflict(err error) bool     { return errors.Is(err, ErrConflict) }
func IsValidation(err error) bool   { return errors.Is(err, ErrValidation) }
func IsUnavailable(err error) bool  { return errors.Is(err, ErrUnavailable) }
