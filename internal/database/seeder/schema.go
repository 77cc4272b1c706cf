package seeder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		name TEXT,
		origin_country TEXT,
		board_type TEXT,
		skill_level INT,
		age INT,
		experience_tier INT,
		group_type TEXT,
		budget INT,
		tags TEXT[],
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profile_visits (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		country TEXT,
		areas TEXT[],
		towns TEXT[],
		days INT,
		raw_text TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_profile_visits_profile_id ON profile_visits(profile_id)`,
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return fmt.Errorf("nil pool")
	}
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
