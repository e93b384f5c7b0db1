package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/genzet/journal-ui/config"
)

const redisPingTimeout = 5 * time.Second

// ConnectRedis connects to Redis and verifies the connection with a ping.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis after ping failure", "error", cerr)
		}
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	logger.InfoContext(ctx, "connected to redis", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}
