// Package sqlite opens the SQLite engine of the SQL store. It is meant for
// local development and tests; production deployments use postgres.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vocab/pkg/storage/sqlstore"

	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/mattn/go-sqlite3"
)

// Dialect is the SQLite flavour of the SQL store. SQLite has neither
// RETURNING (in goqu's dialect) nor row locks.
var Dialect = sqlstore.Dialect{ //nolint: gochecknoglobals
	Name:              "sqlite3",
	IsUniqueViolation: IsUniqueViolation,
}

// IsUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// New opens (creating if needed) the database file at path with foreign keys
// enforced.
func New(ctx context.Context, path string) (*sqlstore.Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not reach sqlite database: %w", err)
	}

	return sqlstore.New(db, Dialect, nil), nil
}

// Migrate applies the embedded SQLite migrations.
func Migrate(ctx context.Context, store *sqlstore.Store) error {
	return sqlstore.Migrate(ctx, store.SQLDB(), "sqlite3", "migrations/sqlite")
}
