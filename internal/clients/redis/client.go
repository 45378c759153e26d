package redis

import (
	"context"
	"log/slog"
	"time"

	"notes-api/internal/config"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 5 * time.Second
	retryDelay  = 500 * time.Millisecond
)

// Init opens a client for cfg.RedisAddr and pings it, retrying up to
// cfg.StoreConnectAttempts times. The caller owns the returned client.
func Init(ctx context.Context, cfg config.Config, log *slog.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: dialTimeout,
	})

	err := retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
			defer cancel()
			return rdb.Ping(pingCtx).Err()
		},
		retry.Attempts(uint(max(cfg.StoreConnectAttempts, 1))),
		retry.Delay(retryDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("redis not ready, retrying", "attempt", n+1, "err", err)
		}),
	)
	if err != nil {
		_ = rdb.Close()
		log.Error("failed to connect to redis", "addr", cfg.RedisAddr, "err", err)
		return nil, err
	}

	log.Info("successfully connected to redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return rdb, nil
}
