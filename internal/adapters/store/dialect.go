package store

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

func init() {
	// sqlx knows "sqlite3" but not the modernc driver name.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// dialect isolates the SQL that differs between drivers.
type dialect struct {
	name string

	// forUpdate is appended to locking reads. SQLite has no row locks and
	// relies on IMMEDIATE transactions taking the write lock instead.
	forUpdate string

	// findLike is the locking read for an existing (quote_id, user_ip) like.
	findLike string

	// insertLike inserts a like. On a duplicate (quote_id, user_ip) pair it
	// either affects zero rows or fails with a unique violation.
	insertLike string

	// searchPredicate matches a lowercased, escaped LIKE pattern against text or author.
	searchPredicate string

	isUniqueViolation func(err error) bool
}

const likeEscape = "!"

const selectLike = "SELECT id FROM likes WHERE quote_id = ? AND user_ip = ?"

var dialects = map[string]dialect{
	DriverPostgres: {
		name:      DriverPostgres,
		forUpdate: " FOR UPDATE",
		findLike:  selectLike + " FOR UPDATE",
		insertLike: `INSERT INTO likes (id, quote_id, user_ip, user_agent, created_at)
VALUES (?, ?, ?, ?, ?) ON CONFLICT (quote_id, user_ip) DO NOTHING`,
		searchPredicate:   `(text ILIKE ? ESCAPE '!' OR author ILIKE ? ESCAPE '!')`,
		isUniqueViolation: pqUniqueViolation,
	},
	DriverMySQL: {
		name:      DriverMySQL,
		forUpdate: " FOR UPDATE",
		findLike:  selectLike + " FOR UPDATE",
		// Duplicates fail with 1062.
		insertLike: `INSERT INTO likes (id, quote_id, user_ip, user_agent, created_at)
VALUES (?, ?, ?, ?, ?)`,
		searchPredicate:   `(LOWER(text) LIKE ? ESCAPE '!' OR LOWER(author) LIKE ? ESCAPE '!')`,
		isUniqueViolation: mysqlUniqueViolation,
	},
	DriverSQLite: {
		name:      DriverSQLite,
		forUpdate: "",
		findLike:  selectLike,
		insertLike: `INSERT INTO likes (id, quote_id, user_ip, user_agent, created_at)
VALUES (?, ?, ?, ?, ?) ON CONFLICT (quote_id, user_ip) DO NOTHING`,
		searchPredicate:   `(LOWER(text) LIKE ? ESCAPE '!' OR LOWER(author) LIKE ? ESCAPE '!')`,
		isUniqueViolation: sqliteUniqueViolation,
	},
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}

	return d, nil
}

// searchPattern builds a case-insensitive substring pattern with LIKE
// metacharacters escaped so they match literally.
func searchPattern(term string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)

	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

// prepareDSN adjusts a configured DSN so every dialect round-trips
// timestamps in UTC and serializes writers the way the like protocol needs.
func prepareDSN(driver, dsn string) (string, error) {
	switch driver {
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("parsing mysql dsn: %w", err)
		}

		cfg.ParseTime = true
		cfg.Loc = time.UTC
		// RowsAffected must count matched rows, not changed ones.
		cfg.ClientFoundRows = true

		return cfg.FormatDSN(), nil
	case DriverSQLite:
		return sqliteDSN(dsn), nil
	default:
		return dsn, nil
	}
}

func sqliteDSN(dsn string) string {
	path, rawQuery, _ := strings.Cut(dsn, "?")

	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		q = url.Values{}
	}

	if q.Get("_txlock") == "" {
		q.Set("_txlock", "immediate")
	}

	// Fixed layout keeps lexical order equal to chronological order.
	if q.Get("_time_format") == "" {
		q.Set("_time_format", "sqlite")
	}

	pragmas := map[string]string{
		"busy_timeout": "busy_timeout(5000)",
		"foreign_keys": "foreign_keys(1)",
		"journal_mode": "journal_mode(WAL)",
	}
	for _, p := range q["_pragma"] {
		name, _, _ := strings.Cut(p, "(")
		delete(pragmas, strings.ToLower(name))
	}

	for _, key := range []string{"busy_timeout", "foreign_keys", "journal_mode"} {
		if p, ok := pragmas[key]; ok {
			q.Add("_pragma", p)
		}
	}

	return path + "?" + q.Encode()
}

func pqUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func mysqlUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError

	return errors.As(err, &myErr) && myErr.Number == 1062
}

func sqliteUniqueViolation(err error) bool {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return false
	}

	switch liteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	default:
		return false
	}
}
