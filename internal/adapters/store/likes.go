package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// Like records one like per (quote, userIP) and increments the counter.
//
// Concurrent likes for the same quote serialize on the quote row lock
// (the database write lock on SQLite). The UNIQUE (quote_id, user_ip)
// constraint backs the locking read up: an insert that loses a race
// affects zero rows and is reported as AlreadyLiked.
func (s *Store) Like(ctx context.Context, id, userIP, userAgent string) (q *domain.Quote, err error) {
	ctx, done := s.observe(ctx, "like")
	defer func() { done(err) }()

	now := s.now()

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		var locked string

		lockQuote := s.rebind("SELECT id FROM quotes WHERE id = ?" + s.dialect.forUpdate)
		if err := tx.GetContext(ctx, &locked, lockQuote, id); err != nil {
			return err
		}

		var existing string

		switch err := tx.GetContext(ctx, &existing, s.rebind(s.dialect.findLike), id, userIP); {
		case err == nil:
			return domain.NewAlreadyLikedError(id, userIP)
		case !errors.Is(err, sql.ErrNoRows):
			return err
		}

		res, err := tx.ExecContext(ctx, s.rebind(s.dialect.insertLike),
			uuid.NewString(), id, userIP, userAgent, now)
		if err != nil {
			if s.dialect.isUniqueViolation(err) {
				return domain.NewAlreadyLikedError(id, userIP)
			}

			return err
		}

		inserted, err := res.RowsAffected()
		if err != nil {
			return err
		}

		if inserted == 0 {
			return domain.NewAlreadyLikedError(id, userIP)
		}

		bump := s.rebind("UPDATE quotes SET likes_count = likes_count + 1, updated_at = ? WHERE id = ?")
		if _, err := tx.ExecContext(ctx, bump, now, id); err != nil {
			return err
		}

		q, err = getQuote(ctx, tx, s.rebind, id, "")

		return err
	})
	if err != nil {
		return nil, translate("like", id, err)
	}

	s.logger.DebugContext(ctx, "quote liked", "quote_id", id, "likes_count", q.LikesCount)

	return q, nil
}

// IsLiked is a plain read and takes no locks.
func (s *Store) IsLiked(ctx context.Context, id, userIP string) (liked bool, err error) {
	ctx, done := s.observe(ctx, "is_liked")
	defer func() { done(err) }()

	query := s.rebind("SELECT EXISTS (SELECT 1 FROM likes WHERE quote_id = ? AND user_ip = ?)")

	if err := s.db.GetContext(ctx, &liked, query, id, userIP); err != nil {
		return false, translate("is_liked", id, err)
	}

	return liked, nil
}

// ResetLikes zeroes every counter and removes every like atomically.
func (s *Store) ResetLikes(ctx context.Context) (err error) {
	ctx, done := s.observe(ctx, "reset_likes")
	defer func() { done(err) }()

	var cleared int64

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, s.rebind("UPDATE quotes SET likes_count = 0, updated_at = ?"), s.now()); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM likes")
		if err != nil {
			return err
		}

		cleared, err = res.RowsAffected()

		return err
	})
	if err != nil {
		return translate("reset_likes", "", err)
	}

	s.logger.InfoContext(ctx, "likes reset", "likes_removed", cleared)

	return nil
}
