package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field limits for quote content.
const (
	MaxTextLength   = 1000
	MaxAuthorLength = 255

	// MaxUserIPLength bounds the caller address a like is keyed by, in bytes.
	MaxUserIPLength = 64
)

// Quote is a stored quotation together with its like aggregate.
type Quote struct {
	ID     string `db:"id"`
	Text   string `db:"text"`
	Author string `db:"author"`

	// LikesCount always equals the number of Like rows for the quote
	// outside an in-flight like or reset transaction.
	LikesCount int64 `db:"likes_count"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Like records that a user, keyed by network address, liked a quote.
type Like struct {
	ID        string    `db:"id"`
	QuoteID   string    `db:"quote_id"`
	UserIP    string    `db:"user_ip"`
	UserAgent string    `db:"user_agent"`
	CreatedAt time.Time `db:"created_at"`
}

// QuotePatch carries the optional fields of a partial update.
// A nil field is left unchanged.
type QuotePatch struct {
	Text   *string
	Author *string
}

// Empty reports whether the patch changes nothing.
func (p QuotePatch) Empty() bool {
	return p.Text == nil && p.Author == nil
}

// ListParams selects one page of quotes.
// Page is 1-based. Search is an optional case-insensitive substring matched
// against text and author.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
}

// Offset returns the number of rows to skip for the page. It saturates at
// math.MaxInt instead of overflowing, so a page far past the end reads
// nothing rather than wrapping to a negative offset.
func (p ListParams) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}

	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}

	return (p.Page - 1) * p.PageSize
}

// QuotePage is one page of a listing plus the total number of matches.
type QuotePage struct {
	Quotes []Quote
	Total  int
}

// TotalPages returns ceil(total / pageSize), or 0 when pageSize is not positive.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}

// Now returns the current time in the precision every store dialect round-trips.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewQuote builds a quote with a fresh id and timestamps.
// Text and author are trimmed and must be non-empty and within length limits.
func NewQuote(text, author string) (Quote, error) {
	text = strings.TrimSpace(text)
	author = strings.TrimSpace(author)

	if err := validateText(text); err != nil {
		return Quote{}, err
	}

	if err := validateAuthor(author); err != nil {
		return Quote{}, err
	}

	now := Now()

	return Quote{
		ID:        uuid.NewString(),
		Text:      text,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Normalize trims the patch fields and validates whatever is set.
func (p QuotePatch) Normalize() (QuotePatch, error) {
	if p.Empty() {
		return p, NewValidationError("body", "at least one of text or author is required")
	}

	var out QuotePatch

	if p.Text != nil {
		text := strings.TrimSpace(*p.Text)
		if err := validateText(text); err != nil {
			return QuotePatch{}, err
		}

		out.Text = &text
	}

	if p.Author != nil {
		author := strings.TrimSpace(*p.Author)
		if err := validateAuthor(author); err != nil {
			return QuotePatch{}, err
		}

		out.Author = &author
	}

	return out, nil
}

func validateText(text string) error {
	switch {
	case text == "":
		return NewValidationError("text", "must not be empty")
	case len([]rune(text)) > MaxTextLength:
		return NewValidationError("text", "must be at most 1000 characters")
	}

	return nil
}

func validateAuthor(author string) error {
	switch {
	case author == "":
		return NewValidationError("author", "must not be empty")
	case len([]rune(author)) > MaxAuthorLength:
		return NewValidationError("author", "must be at most 255 characters")
	}

	return nil
}

// ValidateUserIP checks the caller address before it is stored with a like.
func ValidateUserIP(userIP string) error {
	switch {
	case userIP == "":
		return NewValidationError("user_ip", "must not be empty")
	case len(userIP) > MaxUserIPLength:
		return NewValidationError("user_ip", "must be at most 64 bytes")
	}

	return nil
}
