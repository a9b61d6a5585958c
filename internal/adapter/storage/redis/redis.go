package redis

import (
	"context"
	"fmt"

	"webhook-dispatcher/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient creates a Redis client and verifies connectivity. Every worker
// holds a connection while it polls, so poolSize must cover the worker count
// plus the API's lock, rate limit and enqueue traffic.
func NewClient(ctx context.Context, cfg config.RedisConfig, poolSize int, log zerolog.Logger) (*goredis.Client, error) {
	if cfg.PoolSize > 0 {
		poolSize = cfg.PoolSize
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Int("pool_size", client.Options().PoolSize).
		Msg("Redis connection established")

	return client, nil
}
