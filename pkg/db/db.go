// Package db wraps database/sql for the Postgres-backed repositories.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// SQLExecutor is the subset of *sql.DB repositories need.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// TxFunc runs inside a transaction opened by WithTransaction.
type TxFunc func(ctx context.Context, tx *sql.Tx) error

// SQLClient is a pooled database handle.
type SQLClient struct {
	*sql.DB
}

// NewSQLClient opens a pool for driver/dsn and verifies connectivity.
func NewSQLClient(driver, dsn string) (*SQLClient, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &SQLClient{DB: conn}, nil
}

// WithTransaction runs fn in a transaction with the given isolation level.
// The transaction is committed when fn returns nil and rolled back otherwise.
func WithTransaction(ctx context.Context, executor SQLExecutor, isolation sql.IsolationLevel, fn TxFunc) (err error) {
	tx, err := executor.BeginTx(ctx, &sql.TxOptions{Isolation: isolation})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
