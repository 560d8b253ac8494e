// Package storage defines the persistence contract the services rely on. A
// single generic Repository describes the operations every entity supports;
// per-entity interfaces add their own queries. Concrete backends live in
// sub-packages (sqlstore with the postgres and sqlite engines).
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go
package storage

import (
	"context"

	"vocab/pkg/domain"
)

// Repository is the contract shared by every stored entity type T identified
// by ID.
type Repository[T any, ID comparable] interface {
	// Insert stores item and returns it as read back from the store. A
	// uniqueness violation is reported as ErrConflict.
	Insert(ctx context.Context, item T) (T, error)
	// SelectByID returns the item with the given id or ErrNotFound.
	SelectByID(ctx context.Context, id ID) (T, error)
	// DeleteByID removes the item with the given id. Deleting a missing (or
	// already deleted) item returns ErrNotFound.
	DeleteByID(ctx context.Context, id ID) error
}

// UserStorage persists users.
type UserStorage interface {
	Repository[domain.User, domain.UserID]

	// SelectByKey returns the user owning key or ErrNotFound.
	SelectByKey(ctx context.Context, key string) (domain.User, error)
	// Update writes every mutable column of user and returns the stored row.
	// ErrNotFound if the user does not exist, ErrConflict if the new key is taken.
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

// WordPairStorage persists word pairs.
type WordPairStorage interface {
	Repository[domain.WordPair, domain.WordPairID]

	// SelectByUserID returns all pairs owned by userID, oldest first. A user
	// without pairs yields an empty slice, never ErrNotFound.
	SelectByUserID(ctx context.Context, userID domain.UserID) ([]domain.WordPair, error)
}

// AllStorage groups every entity storage. It is what both a plain and a
// transactional handle expose.
type AllStorage interface {
	Users() UserStorage
	WordPairs() WordPairStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits on success or
	// rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
