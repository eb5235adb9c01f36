package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	keyPrefix      = "erp:session:"
	defaultTimeout = 5 * time.Second
)

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// RedisStore keeps the session snapshot in Redis for shared-terminal
// deployments where several processes on one till must see the same session.
// It satisfies the same synchronous contract as FileStore: reads of an
// unreachable or wiped medium behave as absent, write failures are
// unrecoverable.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
	log     zerolog.Logger
}

// ConnectRedis initialises a Redis-backed store and validates connectivity
// with a ping. A default timeout is applied when none is provided.
func ConnectRedis(ctx context.Context, cfg RedisConfig, log zerolog.Logger) (*RedisStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client, timeout: timeout, log: log}, nil
}

// NewRedisStore wraps an existing client. Used by tests.
func NewRedisStore(client *redis.Client, log zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, timeout: defaultTimeout, log: log}
}

func (s *RedisStore) Set(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		s.log.Fatal().Err(err).Str("key", key).Msg("write session state")
	}
}

func (s *RedisStore) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	v, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("read session state")
		return "", false
	}
	return v, true
}

func (s *RedisStore) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		s.log.Fatal().Err(err).Str("key", key).Msg("remove session state")
	}
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
