package app

import (
	"context"
	"time"

	"wavemate/internal/config"
	"wavemate/internal/database"
	dbpostgres "wavemate/internal/database/postgres"
	"wavemate/internal/domain/matching"
	"wavemate/internal/infrastructure/cache"
	"wavemate/internal/infrastructure/oracle"
	"wavemate/internal/repository"
	"wavemate/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Match  usecase.MatchUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	destCache := cache.NewRedis(logger)

	var destOracle usecase.DestinationOracle
	if cfg.Oracle.APIKey != "" {
		g, err := oracle.NewGeminiNormalizer(ctx, cfg.Oracle.APIKey, cfg.Oracle.Model, logger)
		if err != nil {
			logger.Warn("destination oracle unavailable, area matching disabled", zap.Error(err))
		} else {
			destOracle = g
		}
	} else {
		logger.Warn("no oracle API key configured, area matching disabled")
	}

	normalizer := usecase.NewNormalizeService(destOracle, destCache, cfg.Oracle.Timeout, logger)
	profiles := repository.NewPostgresProfileRepository(db)

	rules := matching.DefaultRuleset()
	if cfg.Matching.TopK > 0 {
		rules.TopK = cfg.Matching.TopK
	}

	matchUC := usecase.NewMatchmaker(profiles, normalizer, rules, cfg.Matching.ScoringWorkers, logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  destCache,
		Match:  matchUC,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
