package main

import (
	"context"
	"log"
	"time"

	"wavemate/internal/config"
	dbpostgres "wavemate/internal/database/postgres"
	"wavemate/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := dbpostgres.ConnectPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, pool); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("seeding complete")
}
