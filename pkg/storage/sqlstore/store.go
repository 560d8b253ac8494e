// Package sqlstore implements the storage contract on top of database/sql and
// goqu. It is engine agnostic: the postgres and sqlite packages open the
// connection and describe their dialect, and sqlstore does everything else.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vocab/pkg/domain"
	"vocab/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

// Dialect describes what differs between the supported SQL engines.
type Dialect struct {
	// Name is the goqu dialect name ("postgres", "sqlite3").
	Name string
	// Returning reports whether INSERT/UPDATE ... RETURNING is available.
	Returning bool
	// RowLocks reports whether SELECT ... FOR UPDATE is available.
	RowLocks bool
	// IsUniqueViolation reports whether err was raised by a UNIQUE constraint.
	IsUniqueViolation func(err error) bool
}

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder abstracts the subset of goqu methods used by this package to
// construct queries. Both a goqu database handle and a transaction handle
// implement this interface.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
	Delete(table any) *goqu.DeleteDataset
}

// Store implements storage.Storage and storage.TxStorage.
type Store struct {
	// DB is the underlying executor. It is either a *sql.DB (when not in a
	// transaction) or a *sql.Tx (when inside a transaction).
	DB DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder

	dialect Dialect
	closer  func()
}

var (
	_ storage.Storage   = (*Store)(nil)
	_ storage.TxStorage = (*Store)(nil)
)

// New wraps db. closer, if not nil, is called by Close after db is closed and
// releases whatever db was opened on top of (e.g. a pgx pool).
func New(db *sql.DB, dialect Dialect, closer func()) *Store {
	return &Store{
		DB:      db,
		Builder: goqu.Dialect(dialect.Name).DB(db),
		dialect: dialect,
		closer:  closer,
	}
}

// Users returns the user storage bound to this handle.
func (s *Store) Users() storage.UserStorage {
	return users{newTable[domain.User, domain.UserID, UserRow](s, usersTable)}
}

// WordPairs returns the word pair storage bound to this handle.
func (s *Store) WordPairs() storage.WordPairStorage {
	return wordPairs{newTable[domain.WordPair, domain.WordPairID, WordPairRow](s, wordPairsTable)}
}

// SQLDB returns the underlying *sql.DB, or nil inside a transaction.
func (s *Store) SQLDB() *sql.DB {
	db, _ := s.DB.(*sql.DB)

	return db
}

func (s *Store) inTx() bool {
	_, ok := s.DB.(*sql.Tx)

	return ok
}

// Close closes the *sql.DB and then whatever it was opened on.
func (s *Store) Close() error {
	var err error
	if db, ok := s.DB.(*sql.DB); ok {
		if cerr := db.Close(); cerr != nil {
			err = fmt.Errorf("could not close db: %w", cerr)
		}
	}
	if s.closer != nil {
		s.closer()
	}

	return err
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called when the store is not in a transactional context.
func (s *Store) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called when the store is not in a transactional context.
func (s *Store) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a new database transaction and returns a transactional Store.
// If called while already inside a transaction, ErrAlreadyInTx is returned.
func (s *Store) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &Store{
		DB:      tx,
		Builder: goqu.NewTx(s.dialect.Name, tx),
		dialect: s.dialect,
	}, nil
}

// WithTx starts a transaction, executes cb with a transactional storage
// handle, and commits if cb returns nil. Otherwise the transaction is rolled
// back and cb's error is returned.
func (s *Store) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
			return errors.Join(err, rerr)
		}

		return err
	}

	return tx.Commit()
}

// classify tags err with storage.ErrConflict when it is a unique violation.
func (s *Store) classify(err error, msg string) error {
	if s.dialect.IsUniqueViolation != nil && s.dialect.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %w", msg, storage.ErrConflict, err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
