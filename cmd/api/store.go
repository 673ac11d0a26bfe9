package main

import (
	"context"
	"fmt"
	"strings"

	"medication-tracker/internal/adapters/storage/memory"
	pg "medication-tracker/internal/adapters/storage/postgres"
	rds "medication-tracker/internal/adapters/storage/redis"
	"medication-tracker/internal/platform/config"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/kvstore"
)

// openStore elige el backend: Postgres si hay DB_DSN, Redis si hay
// REDIS_URL, si no memoria (se pierde al reiniciar).
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (kvstore.Store, func(), error) {
	switch {
	case strings.TrimSpace(cfg.DatabaseDSN) != "":
		db, err := pg.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		s := pg.NewKVStore(db)
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("using postgres store", nil)
		return s, func() { _ = db.Close() }, nil

	case strings.TrimSpace(cfg.RedisURL) != "":
		client, err := rds.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		log.Info("using redis store", map[string]any{"prefix": cfg.RedisPrefix})
		return rds.NewKVStore(client, cfg.RedisPrefix), func() { _ = client.Close() }, nil

	default:
		log.Warn("no DB_DSN or REDIS_URL set, using in-memory store", nil)
		return memory.NewKVStore(), func() {}, nil
	}
}
