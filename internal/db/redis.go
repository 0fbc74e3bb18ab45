package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cohort-tools/api/internal/config"
	"github.com/cohort-tools/api/internal/pkg/helpers"
)

// NewRedisClient connects to Redis. It returns nil without error when no address is configured.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second))
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
	}
	return client, nil
}
