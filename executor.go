package sqlstage

import (
	"context"
	"database/sql"
)

// Executor performs SQL queries.
// It's an interface accepted by Query, QueryRow and Exec methods.
// Both sql.DB, sql.Conn and sql.Tx can be passed as executor.
type Executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// ContextExecutor performs SQL queries with context.
// Both sql.DB, sql.Conn and sql.Tx can be passed as context executor.
type ContextExecutor interface {
	Executor

	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Query executes the statement.
// For every row of a returned dataset it calls a handler function.
//
// The first error of a chained call is returned without touching the database.
func (b *Builder) Query(ctx context.Context, db Executor, handler func(rows *sql.Rows) error) error {
	if b.err != nil {
		return b.err
	}
	var (
		rows *sql.Rows
		err  error
	)
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		rows, err = ctxExecutor.QueryContext(ctx, b.Render(), b.query.args...)
	} else {
		rows, err = db.Query(b.Render(), b.query.args...)
	}
	if err != nil {
		return err
	}

	for rows.Next() {
		if err = handler(rows); err != nil {
			break
		}
	}
	// Check for errors during rows "Close".
	if closeErr := rows.Close(); closeErr != nil {
		return closeErr
	}
	// Check for handler error.
	if err != nil {
		return err
	}
	return rows.Err()
}

// QueryRow executes the statement and scans the first row into dest.
func (b *Builder) QueryRow(ctx context.Context, db Executor, dest ...interface{}) error {
	if b.err != nil {
		return b.err
	}
	var row *sql.Row
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		row = ctxExecutor.QueryRowContext(ctx, b.Render(), b.query.args...)
	} else {
		row = db.QueryRow(b.Render(), b.query.args...)
	}
	return row.Scan(dest...)
}

// Exec executes the statement.
func (b *Builder) Exec(ctx context.Context, db Executor) (sql.Result, error) {
	if b.err != nil {
		return nil, b.err
	}
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		return ctxExecutor.ExecContext(ctx, b.Render(), b.query.args...)
	}
	return db.Exec(b.Render(), b.query.args...)
}
