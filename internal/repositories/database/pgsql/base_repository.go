package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the shared connection pool. Every repository method
// is a single statement, so there is no transaction plumbing here.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
