package store

import (
	"database/sql"
	"errors"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

const (
	serviceName = "quote-store"
	entityQuote = "quote"
)

// translate maps driver errors onto domain errors. Errors that are already
// domain kinds pass through unchanged.
func translate(op, id string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return domain.NewNotFoundError(entityQuote, id)
	case domain.IsNotFound(err), domain.IsAlreadyLiked(err), domain.IsUnavailable(err):
		return err
	default:
		return domain.NewUnavailableError(serviceName, op, err)
	}
}

// outcome labels a finished operation for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case domain.IsNotFound(err):
		return "not_found"
	case domain.IsAlreadyLiked(err):
		return "already_liked"
	default:
		return "error"
	}
}
