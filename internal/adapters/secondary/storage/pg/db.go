package pg

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/VivXwan/astrology-app/internal/ports/persistence"
)

// DB обертка над sqlx.DB, реализующая порт persistence
type DB struct {
	conn *sqlx.DB
}

func NewDB(conn *sqlx.DB) *DB {
	return &DB{conn: conn}
}

func (d *DB) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.conn.GetContext(ctx, dest, query, args...)
}

func (d *DB) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.conn.SelectContext(ctx, dest, query, args...)
}

func (d *DB) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := d.conn.ExecContext(ctx, query, args...)
	return err
}

func (d *DB) ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := d.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *DB) NamedExec(ctx context.Context, query string, arg interface{}) error {
	_, err := d.conn.NamedExecContext(ctx, query, arg)
	return err
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return d.conn.QueryRowxContext(ctx, query, args...)
}

func (d *DB) BeginTx(ctx context.Context) (persistence.Transaction, error) {
	tx, err := d.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// WithTransaction выполняет fn в транзакции с автоматическим rollback при ошибке
func (d *DB) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	tx, err := d.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

func (d *DB) Close() error {
	return d.conn.Close()
}
