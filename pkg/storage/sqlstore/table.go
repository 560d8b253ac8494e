package sqlstore

import (
	"context"
	"fmt"

	"vocab/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

// row is implemented by pointers to the row structs in models.go.
type row[T any, R any] interface {
	*R
	ToDomain() T
	FromDomain(item T)
	PrimaryKey() uuid.UUID
}

// table implements storage.Repository for domain type T stored as row R in
// the named table. Every entity table has a UUID primary key column "id".
type table[T any, ID ~[16]byte, R any, PR row[T, R]] struct {
	s    *Store
	name string
}

func newTable[T any, ID ~[16]byte, R any, PR row[T, R]](s *Store, name string) table[T, ID, R, PR] {
	return table[T, ID, R, PR]{s: s, name: name}
}

func byID(id uuid.UUID) exp.Expression {
	return goqu.C("id").Eq(id)
}

func (t table[T, ID, R, PR]) Insert(ctx context.Context, item T) (T, error) {
	var zero T
	var in R
	PR(&in).FromDomain(item)

	ds := t.s.Builder.Insert(t.name).Prepared(true).Rows(&in)
	if t.s.dialect.Returning {
		var out R
		if _, err := ds.Returning(&out).Executor().ScanStructContext(ctx, &out); err != nil {
			return zero, t.s.classify(err, fmt.Sprintf("could not insert into %s", t.name))
		}

		return PR(&out).ToDomain(), nil
	}

	if _, err := ds.Executor().ExecContext(ctx); err != nil {
		return zero, t.s.classify(err, fmt.Sprintf("could not insert into %s", t.name))
	}

	return t.selectOne(ctx, false, byID(PR(&in).PrimaryKey()))
}

func (t table[T, ID, R, PR]) SelectByID(ctx context.Context, id ID) (T, error) {
	// rows read inside a transaction are about to be modified
	return t.selectOne(ctx, t.s.inTx(), byID(uuid.UUID(id)))
}

func (t table[T, ID, R, PR]) DeleteByID(ctx context.Context, id ID) error {
	res, err := t.s.Builder.Delete(t.name).Prepared(true).
		Where(byID(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete from %s: %w", t.name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get affected rows of %s delete: %w", t.name, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// update writes every updatable column of item (see the goqu:"skipupdate"
// tags on the row structs).
func (t table[T, ID, R, PR]) update(ctx context.Context, item T) (T, error) {
	var zero T
	var in R
	PR(&in).FromDomain(item)
	id := PR(&in).PrimaryKey()

	ds := t.s.Builder.Update(t.name).Prepared(true).Set(&in).Where(byID(id))
	if t.s.dialect.Returning {
		var out R
		found, err := ds.Returning(&out).Executor().ScanStructContext(ctx, &out)
		if err != nil {
			return zero, t.s.classify(err, fmt.Sprintf("could not update %s", t.name))
		}
		if !found {
			return zero, storage.ErrNotFound
		}

		return PR(&out).ToDomain(), nil
	}

	res, err := ds.Executor().ExecContext(ctx)
	if err != nil {
		return zero, t.s.classify(err, fmt.Sprintf("could not update %s", t.name))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return zero, fmt.Errorf("could not get affected rows of %s update: %w", t.name, err)
	}
	if n == 0 {
		return zero, storage.ErrNotFound
	}

	return t.selectOne(ctx, false, byID(id))
}

func (t table[T, ID, R, PR]) selectOne(ctx context.Context, lock bool, where ...exp.Expression) (T, error) {
	var zero T

	ds := t.s.Builder.From(t.name).Prepared(true).Where(where...)
	if lock && t.s.dialect.RowLocks {
		ds = ds.ForUpdate(exp.Wait)
	}

	var out R
	found, err := ds.ScanStructContext(ctx, &out)
	if err != nil {
		return zero, fmt.Errorf("could not select from %s: %w", t.name, err)
	}
	if !found {
		return zero, storage.ErrNotFound
	}

	return PR(&out).ToDomain(), nil
}

func (t table[T, ID, R, PR]) selectMany(ctx context.Context, order []exp.OrderedExpression, where ...exp.Expression) ([]T, error) {
	var rows []R
	if err := t.s.Builder.From(t.name).Prepared(true).
		Where(where...).
		Order(order...).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not select from %s: %w", t.name, err)
	}

	out := make([]T, 0, len(rows))
	for i := range rows {
		out = append(out, PR(&rows[i]).ToDomain())
	}

	return out, nil
}
