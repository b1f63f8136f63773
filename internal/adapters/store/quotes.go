package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

const quoteColumns = "id, text, author, likes_count, created_at, updated_at"

// topWindow is the trailing window used by TopWeekly.
const topWindow = 7 * 24 * time.Hour

// GetRandom counts the quotes and fetches one at a uniformly random offset
// in primary-key order.
func (s *Store) GetRandom(ctx context.Context) (q *domain.Quote, err error) {
	ctx, done := s.observe(ctx, "get_random")
	defer func() { done(err) }()

	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM quotes"); err != nil {
		return nil, translate("get_random", "", err)
	}

	if count == 0 {
		return nil, domain.NewNotFoundError(entityQuote, "")
	}

	query := s.rebind("SELECT " + quoteColumns + " FROM quotes ORDER BY id LIMIT 1 OFFSET ?")

	var quote domain.Quote

	err = s.db.GetContext(ctx, &quote, query, s.intn(count))
	if errors.Is(err, sql.ErrNoRows) {
		// Rows deleted after the count shrink the table under the offset.
		// The store is only empty if the first row is gone too.
		err = s.db.GetContext(ctx, &quote, "SELECT "+quoteColumns+" FROM quotes ORDER BY id LIMIT 1")
	}

	if err != nil {
		return nil, translate("get_random", "", err)
	}

	return normalize(&quote), nil
}

// List returns one page newest first and the number of matching quotes.
func (s *Store) List(ctx context.Context, params domain.ListParams) (page *domain.QuotePage, err error) {
	ctx, done := s.observe(ctx, "list")
	defer func() { done(err) }()

	var (
		where string
		args  []any
	)

	if term := strings.TrimSpace(params.Search); term != "" {
		pattern := searchPattern(term)
		where = " WHERE " + s.dialect.searchPredicate
		args = append(args, pattern, pattern)
	}

	var total int
	if err := s.db.GetContext(ctx, &total, s.rebind("SELECT COUNT(*) FROM quotes"+where), args...); err != nil {
		return nil, translate("list", "", err)
	}

	quotes := make([]domain.Quote, 0, params.PageSize)

	query := s.rebind("SELECT " + quoteColumns + " FROM quotes" + where +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")

	if err := s.db.SelectContext(ctx, &quotes, query, append(args, params.PageSize, params.Offset())...); err != nil {
		return nil, translate("list", "", err)
	}

	for i := range quotes {
		normalize(&quotes[i])
	}

	return &domain.QuotePage{Quotes: quotes, Total: total}, nil
}

// GetByID returns a single quote.
func (s *Store) GetByID(ctx context.Context, id string) (q *domain.Quote, err error) {
	ctx, done := s.observe(ctx, "get_by_id")
	defer func() { done(err) }()

	quote, err := getQuote(ctx, s.db, s.rebind, id, "")
	if err != nil {
		return nil, translate("get_by_id", id, err)
	}

	return quote, nil
}

// Create inserts the quote with a zero like count.
func (s *Store) Create(ctx context.Context, quote *domain.Quote) (err error) {
	ctx, done := s.observe(ctx, "create")
	defer func() { done(err) }()

	quote.LikesCount = 0
	quote.CreatedAt = quote.CreatedAt.UTC().Truncate(time.Microsecond)
	quote.UpdatedAt = quote.UpdatedAt.UTC().Truncate(time.Microsecond)

	query := s.rebind(`INSERT INTO quotes (id, text, author, likes_count, created_at, updated_at)
VALUES (?, ?, ?, 0, ?, ?)`)

	if _, err := s.db.ExecContext(ctx, query,
		quote.ID, quote.Text, quote.Author, quote.CreatedAt, quote.UpdatedAt); err != nil {
		return translate("create", quote.ID, err)
	}

	return nil
}

// Update applies the set patch fields and bumps updated_at.
func (s *Store) Update(ctx context.Context, id string, patch domain.QuotePatch) (q *domain.Quote, err error) {
	ctx, done := s.observe(ctx, "update")
	defer func() { done(err) }()

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if patch.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *patch.Text)
	}

	if patch.Author != nil {
		sets = append(sets, "author = ?")
		args = append(args, *patch.Author)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, s.now(), id)

	query := s.rebind("UPDATE quotes SET " + strings.Join(sets, ", ") + " WHERE id = ?")

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		if err := requireRow(res, id); err != nil {
			return err
		}

		q, err = getQuote(ctx, tx, s.rebind, id, "")

		return err
	})
	if err != nil {
		return nil, translate("update", id, err)
	}

	return q, nil
}

// Delete removes the quote and its likes in one transaction.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	ctx, done := s.observe(ctx, "delete")
	defer func() { done(err) }()

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, s.rebind("DELETE FROM likes WHERE quote_id = ?"), id); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, s.rebind("DELETE FROM quotes WHERE id = ?"), id)
		if err != nil {
			return err
		}

		return requireRow(res, id)
	})

	return translate("delete", id, err)
}

// TopWeekly ranks quotes created within the trailing seven days.
func (s *Store) TopWeekly(ctx context.Context) (q *domain.Quote, err error) {
	ctx, done := s.observe(ctx, "top_weekly")
	defer func() { done(err) }()

	cutoff := s.now().Add(-topWindow)

	query := s.rebind("SELECT " + quoteColumns + " FROM quotes WHERE created_at >= ?" +
		" ORDER BY likes_count DESC, created_at DESC LIMIT 1")

	var quote domain.Quote
	if err := s.db.GetContext(ctx, &quote, query, cutoff); err != nil {
		return nil, translate("top_weekly", "", err)
	}

	return normalize(&quote), nil
}

// TopAllTime ranks every quote.
func (s *Store) TopAllTime(ctx context.Context) (q *domain.Quote, err error) {
	ctx, done := s.observe(ctx, "top_alltime")
	defer func() { done(err) }()

	query := "SELECT " + quoteColumns + " FROM quotes ORDER BY likes_count DESC, created_at DESC LIMIT 1"

	var quote domain.Quote
	if err := s.db.GetContext(ctx, &quote, query); err != nil {
		return nil, translate("top_alltime", "", err)
	}

	return normalize(&quote), nil
}

// getQuote reads one quote through db or tx. lock is appended verbatim.
func getQuote(ctx context.Context, q sqlx.QueryerContext, rebind func(string) string, id, lock string) (*domain.Quote, error) {
	var quote domain.Quote

	query := rebind("SELECT " + quoteColumns + " FROM quotes WHERE id = ?" + lock)
	if err := sqlx.GetContext(ctx, q, &quote, query, id); err != nil {
		return nil, err
	}

	return normalize(&quote), nil
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

// requireRow maps a statement that touched nothing to NotFound.
func requireRow(res rowsAffecter, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return domain.NewNotFoundError(entityQuote, id)
	}

	return nil
}

// normalize pins scanned timestamps to UTC so every dialect reports the same values.
func normalize(q *domain.Quote) *domain.Quote {
	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()

	return q
}
