package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisOption func(*redis.Options)

func WithRedisPassword(password string) RedisOption {
	return func(o *redis.Options) {
		o.Password = password
	}
}

func WithRedisDB(db int) RedisOption {
	return func(o *redis.Options) {
		o.DB = db
	}
}

func WithRedisPoolSize(poolSize int) RedisOption {
	return func(o *redis.Options) {
		o.PoolSize = poolSize
	}
}

func NewRedisClient(ctx context.Context, addr string, options ...RedisOption) (*redis.Client, error) {
	opts := &redis.Options{Addr: addr}
	for _, option := range options {
		option(opts)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}
