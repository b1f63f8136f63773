package dto

import (
	"time"

	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
)

// QuoteResponse is the JSON shape of a quote.
type QuoteResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
	LikesCount int64     `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateQuoteRequest is the body of POST /api/quotes.
type CreateQuoteRequest struct {
	Text   string `json:"text" validate:"required,notempty,max=1000"`
	Author string `json:"author" validate:"required,notempty,max=255"`
}

// UpdateQuoteRequest is the body of PUT /api/quotes/:id. Absent fields are unchanged.
type UpdateQuoteRequest struct {
	Text   *string `json:"text" validate:"omitempty,notempty,max=1000"`
	Author *string `json:"author" validate:"omitempty,notempty,max=255"`
}

// Patch converts the request to a domain patch.
func (r UpdateQuoteRequest) Patch() domain.QuotePatch {
	return domain.QuotePatch{Text: r.Text, Author: r.Author}
}

// IsLikedResponse is the body of GET /api/quotes/:id/is-liked.
type IsLikedResponse struct {
	IsLiked bool `json:"is_liked"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote, liked bool) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		LikesCount: q.LikesCount,
		IsLiked:    liked,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

// FromLikedQuote converts a quote annotated for the caller.
func FromLikedQuote(q *app.LikedQuote) QuoteResponse {
	return NewQuoteResponse(&q.Quote, q.IsLiked)
}

// FromListing converts a listing.
func FromListing(l *app.QuoteListing) PaginatedQuotesResponse {
	quotes := make([]QuoteResponse, len(l.Quotes))
	for i := range l.Quotes {
		quotes[i] = FromLikedQuote(&l.Quotes[i])
	}

	return PaginatedQuotesResponse{
		Quotes:     quotes,
		Total:      l.Total,
		Page:       l.Page,
		PageSize:   l.PageSize,
		TotalPages: l.TotalPages,
	}
}
