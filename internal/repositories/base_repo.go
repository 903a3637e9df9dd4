package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
)

/*
baseRepo holds the DB connection, the base SELECT for its table and a
scanner for a single entity type T. It gives every repository:

	• GetByID(ctx, id int64) (T, error)   – zero T when absent
	• ListAll(ctx) ([]T, error)
	• Delete(ctx, id int64) (bool, error) – false when nothing was removed
*/
type baseRepo[T any] struct {
	db         DB
	table      string
	selectBase string
	scan       func(row pgx.Row) (T, error)
}

func newBaseRepo[T any](db DB, table, selectBase string, scan func(pgx.Row) (T, error)) *baseRepo[T] {
	return &baseRepo[T]{db: db, table: table, selectBase: selectBase, scan: scan}
}

// -------------------------- public helpers --------------------------

func (b *baseRepo[T]) GetByID(ctx context.Context, id int64) (T, error) {
	row := b.db.QueryRow(ctx, b.selectBase+" WHERE id=$1", id)
	return b.scan(row)
}

func (b *baseRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	return b.list(ctx, " ORDER BY id")
}

func (b *baseRepo[T]) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := withTx(ctx, b.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, b.table), id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() == 1
		return nil
	})
	return deleted, err
}

// -------------------------- internal helpers --------------------------

// list runs selectBase followed by suffix (WHERE / ORDER BY clauses).
func (b *baseRepo[T]) list(ctx context.Context, suffix string, args ...any) ([]T, error) {
	rows, err := b.db.Query(ctx, b.selectBase+suffix, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := b.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// writeReturning executes an INSERT/UPDATE ... RETURNING inside a transaction
// and scans the stored row back.
func (b *baseRepo[T]) writeReturning(ctx context.Context, sql string, args ...any) (T, error) {
	var out T
	err := withTx(ctx, b.db, func(tx pgx.Tx) error {
		item, err := b.scan(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}
		out = item
		return nil
	})
	return out, err
}
