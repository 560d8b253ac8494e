package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"vocab/pkg/storage"
	"vocab/pkg/storage/sqlite"
	"vocab/pkg/storage/storagetest"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) storage.Storage {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "vocab.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, sqlite.Migrate(ctx, store))

	return store
}

func TestSQLite(t *testing.T) {
	storagetest.Run(t, setupTestDB)
}

func TestIsUniqueViolation(t *testing.T) {
	require.False(t, sqlite.IsUniqueViolation(errors.New("UNIQUE constraint failed")))
	require.False(t, sqlite.IsUniqueViolation(nil))
}
