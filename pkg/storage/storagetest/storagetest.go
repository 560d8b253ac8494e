// Package storagetest holds the behavioural test-suite every storage.Storage
// implementation must pass. Engine packages call Run from their own tests.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"vocab/pkg/domain"
	"vocab/pkg/domain/domaintest"
	"vocab/pkg/storage"

	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated storage for a single subtest.
type Factory func(t *testing.T) storage.Storage

// Run executes the whole suite against storages produced by newStorage.
func Run(t *testing.T, newStorage Factory) {
	t.Helper()

	t.Run("Users", func(t *testing.T) { testUsers(t, newStorage) })
	t.Run("WordPairs", func(t *testing.T) { testWordPairs(t, newStorage) })
	t.Run("Transactions", func(t *testing.T) { testTransactions(t, newStorage) })
}

type fixture struct {
	clock *domaintest.Clock
	ids   *domaintest.IDs
}

func newFixture() fixture {
	return fixture{
		// nanoseconds on purpose: the store keeps microseconds only
		clock: domaintest.NewClock(time.Date(2024, time.May, 1, 8, 15, 30, 123456789, time.FixedZone("X", -5*3600))),
		ids:   &domaintest.IDs{},
	}
}

func (f fixture) user(key string) domain.User {
	return domain.NewUser(f.ids, f.clock, key, "some name", "$argon2id$v=19$m=64,t=1,p=1$c2FsdA$a2V5")
}

func (f fixture) pair(userID domain.UserID, source, target string) domain.WordPair {
	return domain.NewWordPair(f.ids, f.clock, userID, domain.WordPairFields{
		SourceText:     source,
		TargetText:     target,
		SourceLanguage: "en",
		TargetLanguage: "de",
	})
}

func testUsers(t *testing.T, newStorage Factory) {
	ctx := context.Background()

	t.Run("insert and select", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()
		u := f.user("alice01")

		stored, err := s.Users().Insert(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u, stored, "inserted row must read back unchanged")

		byID, err := s.Users().SelectByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u, byID)

		byKey, err := s.Users().SelectByKey(ctx, "alice01")
		require.NoError(t, err)
		require.Equal(t, u, byKey)
	})

	t.Run("missing user", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()

		_, err := s.Users().SelectByID(ctx, f.user("ghost01").ID)
		require.ErrorIs(t, err, storage.ErrNotFound)

		_, err = s.Users().SelectByKey(ctx, "ghost01")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("duplicate key conflicts", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()

		_, err := s.Users().Insert(ctx, f.user("alice01"))
		require.NoError(t, err)

		_, err = s.Users().Insert(ctx, f.user("alice01"))
		require.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("update", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()
		u := f.user("alice01")
		_, err := s.Users().Insert(ctx, u)
		require.NoError(t, err)

		key := "alice02"
		f.clock.Advance(time.Minute)
		u.Update(f.clock, domain.UserChanges{Key: &key})

		updated, err := s.Users().Update(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u, updated)

		_, err = s.Users().SelectByKey(ctx, "alice01")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("update conflicts and missing", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()
		a, b := f.user("alice01"), f.user("bobby01")
		_, err := s.Users().Insert(ctx, a)
		require.NoError(t, err)
		_, err = s.Users().Insert(ctx, b)
		require.NoError(t, err)

		key := "alice01"
		b.Update(f.clock, domain.UserChanges{Key: &key})
		_, err = s.Users().Update(ctx, b)
		require.ErrorIs(t, err, storage.ErrConflict)

		_, err = s.Users().Update(ctx, f.user("ghost01"))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()
		u := f.user("alice01")
		_, err := s.Users().Insert(ctx, u)
		require.NoError(t, err)

		require.NoError(t, s.Users().DeleteByID(ctx, u.ID))
		require.ErrorIs(t, s.Users().DeleteByID(ctx, u.ID), storage.ErrNotFound)

		_, err = s.Users().SelectByID(ctx, u.ID)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func testWordPairs(t *testing.T, newStorage Factory) {
	ctx := context.Background()

	t.Run("insert, select and list", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()
		u := f.user("alice01")
		_, err := s.Users().Insert(ctx, u)
		require.NoError(t, err)

		empty, err := s.WordPairs().SelectByUserID(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, empty)
		require.Empty(t, empty)

		first := f.pair(u.ID, "hello", "hallo")
		f.clock.Advance(time.Second)
		second := f.pair(u.ID, "dog", "hund")

		stored, err := s.WordPairs().Insert(ctx, first)
		require.NoError(t, err)
		require.Equal(t, first, stored)
		_, err = s.WordPairs().Insert(ctx, second)
		require.NoError(t, err)

		got, err := s.WordPairs().SelectByID(ctx, second.ID)
		require.NoError(t, err)
		require.Equal(t, second, got)

		list, err := s.WordPairs().SelectByUserID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.WordPair{first, second}, list)
	})

	t.Run("duplicate pair conflicts", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()
		u := f.user("alice01")
		_, err := s.Users().Insert(ctx, u)
		require.NoError(t, err)

		_, err = s.WordPairs().Insert(ctx, f.pair(u.ID, "hello", "hallo"))
		require.NoError(t, err)
		_, err = s.WordPairs().Insert(ctx, f.pair(u.ID, "hello", "hallo"))
		require.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("unknown owner is not a conflict", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()

		_, err := s.WordPairs().Insert(ctx, f.pair(f.user("ghost01").ID, "hello", "hallo"))
		require.Error(t, err)
		require.NotErrorIs(t, err, storage.ErrConflict)
		require.NotErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete and cascade", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()
		u := f.user("alice01")
		_, err := s.Users().Insert(ctx, u)
		require.NoError(t, err)
		a := f.pair(u.ID, "hello", "hallo")
		b := f.pair(u.ID, "cat", "katze")
		for _, p := range []domain.WordPair{a, b} {
			_, err = s.WordPairs().Insert(ctx, p)
			require.NoError(t, err)
		}

		require.NoError(t, s.WordPairs().DeleteByID(ctx, a.ID))
		require.ErrorIs(t, s.WordPairs().DeleteByID(ctx, a.ID), storage.ErrNotFound)
		_, err = s.WordPairs().SelectByID(ctx, a.ID)
		require.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, s.Users().DeleteByID(ctx, u.ID))
		_, err = s.WordPairs().SelectByID(ctx, b.ID)
		require.ErrorIs(t, err, storage.ErrNotFound, "pairs must go with their owner")
	})
}

func testTransactions(t *testing.T, newStorage Factory) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		s := newStorage(t)
		u := newFixture().user("alice01")

		err := s.WithTx(ctx, func(tx storage.AllStorage) error {
			_, err := tx.Users().Insert(ctx, u)

			return err
		})
		require.NoError(t, err)

		_, err = s.Users().SelectByID(ctx, u.ID)
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		s := newStorage(t)
		u := newFixture().user("alice01")
		boom := errors.New("boom")

		err := s.WithTx(ctx, func(tx storage.AllStorage) error {
			if _, err := tx.Users().Insert(ctx, u); err != nil {
				return err
			}

			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Users().SelectByID(ctx, u.ID)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("read-modify-write", func(t *testing.T) {
		s := newStorage(t)
		f := newFixture()
		u := f.user("alice01")
		_, err := s.Users().Insert(ctx, u)
		require.NoError(t, err)

		name := "alice smith"
		err = s.WithTx(ctx, func(tx storage.AllStorage) error {
			cur, err := tx.Users().SelectByID(ctx, u.ID)
			if err != nil {
				return err
			}
			cur.Update(f.clock, domain.UserChanges{Name: &name})
			_, err = tx.Users().Update(ctx, cur)

			return err
		})
		require.NoError(t, err)

		got, err := s.Users().SelectByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "Alice Smith", got.Name)
		require.True(t, got.UpdatedAt.After(u.UpdatedAt))
	})

	t.Run("misuse", func(t *testing.T) {
		s := newStorage(t)

		tx, err := s.Begin(ctx)
		require.NoError(t, err)

		if nested, ok := tx.(storage.Storage); ok {
			_, err = nested.Begin(ctx)
			require.ErrorIs(t, err, storage.ErrAlreadyInTx)
		}

		require.NoError(t, tx.Rollback())

		if plain, ok := s.(storage.TxStorage); ok {
			require.ErrorIs(t, plain.Commit(), storage.ErrNotInTx)
			require.ErrorIs(t, plain.Rollback(), storage.ErrNotInTx)
		}
	})
}
