package store

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

func TestSearchPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"Aurelius", "%aurelius%"},
		{"100%", "%100!%%"},
		{"snake_case", "%snake!_case%"},
		{"wow!", "%wow!!%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, searchPattern(tt.term), tt.term)
	}
}

func TestSQLiteDSN(t *testing.T) {
	t.Run("defaults added", func(t *testing.T) {
		dsn := sqliteDSN("/tmp/quotes.db")

		path, raw, ok := strings.Cut(dsn, "?")
		require.True(t, ok)
		assert.Equal(t, "/tmp/quotes.db", path)

		q, err := url.ParseQuery(raw)
		require.NoError(t, err)
		assert.Equal(t, "immediate", q.Get("_txlock"))
		assert.Equal(t, "sqlite", q.Get("_time_format"))
		assert.ElementsMatch(t,
			[]string{"busy_timeout(5000)", "foreign_keys(1)", "journal_mode(WAL)"},
			q["_pragma"])
	})

	t.Run("explicit settings kept", func(t *testing.T) {
		dsn := sqliteDSN("file:q.db?_txlock=exclusive&_pragma=busy_timeout(100)")

		q, err := url.ParseQuery(strings.SplitN(dsn, "?", 2)[1])
		require.NoError(t, err)
		assert.Equal(t, "exclusive", q.Get("_txlock"))
		assert.Contains(t, q["_pragma"], "busy_timeout(100)")
		assert.NotContains(t, q["_pragma"], "busy_timeout(5000)")
	})
}

func TestPrepareDSN_MySQL(t *testing.T) {
	dsn, err := prepareDSN(DriverMySQL, "quotes:secret@tcp(db:3306)/quotes")
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, cfg.ParseTime)
	assert.True(t, cfg.ClientFoundRows)
	assert.Equal(t, time.UTC, cfg.Loc)
	assert.Equal(t, "quotes", cfg.DBName)
}

func TestPrepareDSN_Postgres(t *testing.T) {
	in := "host=localhost port=5432 user=quotes_user dbname=quotes_db sslmode=disable"

	out, err := prepareDSN(DriverPostgres, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUniqueViolation(t *testing.T) {
	assert.True(t, pqUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, pqUniqueViolation(&pq.Error{Code: "23503"}))
	assert.True(t, mysqlUniqueViolation(&mysql.MySQLError{Number: 1062}))
	assert.False(t, mysqlUniqueViolation(errors.New("1062")))

	s := newTestStore(t)
	q := seedQuote(t, s, "dup", "dup", time.Now())
	likeFrom(t, s, q.ID, "10.0.0.1")

	_, err := s.db.Exec(
		"INSERT INTO likes (id, quote_id, user_ip, user_agent, created_at) VALUES (?, ?, ?, '', ?)",
		"another-id", q.ID, "10.0.0.1", time.Now().UTC(),
	)
	require.Error(t, err)
	assert.True(t, sqliteUniqueViolation(err))
	assert.False(t, sqliteUniqueViolation(context.Canceled))
}

func TestTranslate(t *testing.T) {
	cause := errors.New("connection reset")

	assert.NoError(t, translate("op", "id", nil))
	assert.ErrorIs(t, translate("op", "id", domain.NewAlreadyLikedError("id", "ip")), domain.ErrAlreadyLiked)

	err := translate("list", "", cause)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	require.ErrorIs(t, err, cause)

	var unavailable *domain.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "list", unavailable.Reason)
}

func TestDialects_LikeQueries(t *testing.T) {
	for name, d := range dialects {
		t.Run(name, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(d.findLike, selectLike))
			assert.NotContains(t, d.insertLike, "IGNORE", "a duplicate must surface as zero rows or a unique violation")
		})
	}
}
