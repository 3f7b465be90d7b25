package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// Querier is satisfied by *sql.DB, *sql.Tx and *sql.Conn. Helpers that can
// run either inside or outside a user scope accept it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *stdsql.Row
}

// WithUserTx runs fn inside a transaction on the app pool with
// app.current_user_id bound to userID for the transaction's lifetime.
//
// set_config(..., true) is transaction-local, and database/sql pins a
// transaction to one connection, so every statement fn issues sees the
// user's RLS scope. Multi-statement user-mode flows must go through here:
// statements issued on the bare pool run with the setting unset and see
// zero tenant rows.
func (c *Client) WithUserTx(ctx context.Context, userID string, fn func(tx *stdsql.Tx) error) error {
	if userID == "" {
		return fmt.Errorf("user scope requires a non-empty user id")
	}

	tx, err := c.app.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin user tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`SELECT set_config('app.current_user_id', $1, true)`, userID); err != nil {
		return fmt.Errorf("bind user scope: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit user tx: %w", err)
	}
	return nil
}

// WithUserConn runs fn on a single dedicated app-pool connection with
// app.current_user_id bound session-locally (not transaction-locally).
// Used for read sequences that must not open a transaction, e.g. the
// validator's EXPLAIN probe followed by exploration queries. The setting is
// reset before the connection returns to the pool.
func (c *Client) WithUserConn(ctx context.Context, userID string, fn func(conn *stdsql.Conn) error) error {
	if userID == "" {
		return fmt.Errorf("user scope requires a non-empty user id")
	}

	conn, err := c.app.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx,
		`SELECT set_config('app.current_user_id', $1, false)`, userID); err != nil {
		return fmt.Errorf("bind user scope: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx),
			`SELECT set_config('app.current_user_id', '', false)`)
	}()

	return fn(conn)
}
