package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"vocab"
	"vocab/pkg/logger"

	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded goose migrations found in dir (for example
// "migrations/postgres") using the given goose dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(vocab.Migrations)
	goose.SetLogger(logger.Goose(ctx))

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect to %s: %w", dialect, err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	return nil
}
