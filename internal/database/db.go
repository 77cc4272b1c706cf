package database

import (
	"context"
)

// DB is the read-only store handle the matching engine works against. The
// engine never writes: outcomes are not persisted, so there is no Exec or
// transaction surface here.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
