package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// New creates a Queries instance backed by the given connection
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries provides access to the storefront reference data
type Queries struct {
	db DBTX
}

// WithTx returns a Queries instance scoped to the given transaction
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// GetDBTX returns the underlying database transaction or connection interface.
// This is useful for starting transactions or accessing the raw database connection.
func (q *Queries) GetDBTX() DBTX {
	return q.db
}
