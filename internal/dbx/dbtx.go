// Package dbx provides a minimal database/sql abstraction shared by
// repositories: the DBTX interface is implemented by both *sql.DB and
// *sql.Tx, so repository code is indifferent to transactional context.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
