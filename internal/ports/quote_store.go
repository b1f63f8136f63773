// Package ports defines the contracts between the application layer and its adapters.
//
// Every method takes a context first and returns domain types and domain
// errors (ErrNotFound, ErrAlreadyLiked, ErrUnavailable), never driver types.
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// QuoteStore persists quotes and likes and answers ranking queries.
// Implementations must be safe for concurrent use.
type QuoteStore interface {
	// GetRandom returns one quote chosen uniformly at random.
	// Returns domain.ErrNotFound if the store is empty.
	GetRandom(ctx context.Context) (*domain.Quote, error)

	// List returns one page ordered newest first plus the total match count.
	// Callers pass a valid page (>= 1) and page size (1..100).
	List(ctx context.Context, params domain.ListParams) (*domain.QuotePage, error)

	// GetByID returns the quote or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.Quote, error)

	// Create persists a quote built by domain.NewQuote.
	Create(ctx context.Context, quote *domain.Quote) error

	// Update applies the non-nil patch fields and refreshes updated_at.
	// The like count is never changed. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, id string, patch domain.QuotePatch) (*domain.Quote, error)

	// Delete removes the quote together with its likes.
	// Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Like records a like by userIP and increments the like count atomically.
	// Returns domain.ErrNotFound if the quote is absent and
	// domain.ErrAlreadyLiked if userIP already liked it.
	Like(ctx context.Context, id, userIP, userAgent string) (*domain.Quote, error)

	// IsLiked reports whether userIP has liked the quote.
	IsLiked(ctx context.Context, id, userIP string) (bool, error)

	// TopWeekly returns the most liked quote created in the trailing seven days.
	// Ties go to the newest quote. Returns domain.ErrNotFound if none qualify.
	TopWeekly(ctx context.Context) (*domain.Quote, error)

	// TopAllTime returns the most liked quote overall, ties to the newest.
	TopAllTime(ctx context.Context) (*domain.Quote, error)

	// ResetLikes zeroes every like count and deletes every like in one transaction.
	ResetLikes(ctx context.Context) error
}
