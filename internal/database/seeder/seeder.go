package seeder

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seeders run against a write-capable pool. The serving path only reads,
// so the store handle it uses has no Exec surface; seeding gets its own.
type Seeder interface {
	Name() string
	Run(ctx context.Context, pool *pgxpool.Pool) error
}
