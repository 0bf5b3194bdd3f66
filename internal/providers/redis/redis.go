package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisProvider struct {
	Client *redis.Client
	URL    string
	logger *zap.SugaredLogger
	ttl    time.Duration
}

func NewRedisProvider(redisURL string, logger *zap.Logger, ttl time.Duration) *RedisProvider {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{
			Addr: redisURL,
			DB:   0,
		}
	}

	client := redis.NewClient(opts)

	client.Options().MaxRetries = 3
	client.Options().MinRetryBackoff = 100 * time.Millisecond
	client.Options().MaxRetryBackoff = 500 * time.Millisecond

	provider := &RedisProvider{
		Client: client,
		URL:    redisURL,
		logger: logger.Sugar(),
		ttl:    ttl,
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		provider.logger.Errorw("Redis connection failed at startup", "error", err)
	} else {
		provider.logger.Infow("Redis connected",
			"url", redisURL,
			"db", opts.DB,
			"default_ttl", ttl.String(),
		)
	}

	return provider
}

func (r *RedisProvider) SetWithDefaultTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.Client.Set(ctx, key, value, ttl)
}

func (r *RedisProvider) Get(ctx context.Context, key string) *redis.StringCmd {
	return r.Client.Get(ctx, key)
}

func (r *RedisProvider) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return r.Client.Del(ctx, keys...)
}

// DelByPattern removes every key matching pattern via SCAN, so it is safe to
// call on a live instance.
func (r *RedisProvider) DelByPattern(ctx context.Context, pattern string) {
	var cursor uint64
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			r.logger.Warnw("Redis scan failed", "pattern", pattern, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := r.Client.Del(ctx, keys...).Err(); err != nil {
				r.logger.Warnw("Redis delete failed", "pattern", pattern, "error", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
