// Package repository translates domain entities to and from storage rows.
// Every call borrows exactly one pooled session for exactly one statement
// and returns it on all exit paths; repositories never hold a connection
// across calls and never share one between callers.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type base struct {
	pool   *storage.Pool
	logger *zap.Logger
}

// queryOne runs a single-row lookup. A missing row is an empty Option,
// never an error.
func queryOne[T any](ctx context.Context, b base, errMsg, query string, scan func(scanner) (T, error), args ...any) (mo.Option[T], error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return mo.None[T](), err
	}
	defer b.pool.Release(conn)

	v, err := scan(conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[T](), nil
		}
		b.logger.Error(errMsg, zap.Error(err))
		return mo.None[T](), storage.NewDatabaseError(errMsg, err)
	}
	return mo.Some(v), nil
}

func queryAll[T any](ctx context.Context, b base, errMsg, query string, scan func(scanner) (T, error), args ...any) ([]T, error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer b.pool.Release(conn)

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		b.logger.Error(errMsg, zap.Error(err))
		return nil, storage.NewDatabaseError(errMsg, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			b.logger.Error(errMsg, zap.Error(err))
			return nil, storage.NewDatabaseError(errMsg, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		b.logger.Error(errMsg, zap.Error(err))
		return nil, storage.NewDatabaseError(errMsg, err)
	}
	return out, nil
}

// execute runs a mutating statement and returns the affected row count.
// Callers decide whether zero rows is an error or an expected outcome.
func execute(ctx context.Context, b base, errMsg, query string, args ...any) (int64, error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer b.pool.Release(conn)

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		b.logger.Error(errMsg, zap.Error(err))
		return 0, storage.NewDatabaseError(errMsg, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		b.logger.Error(errMsg, zap.Error(err))
		return 0, storage.NewDatabaseError(errMsg, err)
	}
	return n, nil
}

// insertRow runs an INSERT and reads back the engine-generated identifier.
func insertRow(ctx context.Context, b base, entity, query string, args ...any) (int64, error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer b.pool.Release(conn)

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		b.logger.Error("error saving "+entity, zap.Error(err))
		return 0, storage.NewDatabaseError("error saving "+entity, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, storage.NewDatabaseError("error saving "+entity, err)
	}
	if n == 0 {
		return 0, storage.NewDatabaseError("creating "+entity+" failed, no rows affected", nil)
	}

	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, storage.NewDatabaseError("creating "+entity+" failed, no ID obtained", err)
	}
	return id, nil
}
