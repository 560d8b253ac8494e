package sqlstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"vocab/pkg/domain"
	"vocab/pkg/storage"
	"vocab/pkg/storage/sqlite"
	"vocab/pkg/storage/sqlstore"

	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	ctx := context.Background()

	s, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, sqlite.Migrate(ctx, s))

	return s
}

func TestStore_Begin(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NotNil(t, s.SQLDB())

	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	inner, ok := tx.(*sqlstore.Store)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)
	require.Nil(t, inner.SQLDB())

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestStore_CommitAndRollbackOutsideTx(t *testing.T) {
	s := newStore(t)

	require.ErrorIs(t, s.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, s.Rollback(), storage.ErrNotInTx)
}

func TestStore_WithTxReturnsCallbackError(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.Users().DeleteByID(ctx, domain.UserID{1})
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}
