package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/edu2101/ror"
	"github.com/redis/go-redis/v9"
)

// Redis is a Cache storing JSON encoded evaluations in redis.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis connects to the redis server at url, a "redis://" URL.
func NewRedis(url, prefix string, ttl time.Duration, logger *slog.Logger) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisWithClient(redis.NewClient(opt), prefix, ttl, logger), nil
}

// NewRedisWithClient uses an existing client.
func NewRedisWithClient(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

func (r *Redis) Get(ctx context.Context, key string) (ror.Evaluation, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return ror.Evaluation{}, false, nil
	}
	if err != nil {
		return ror.Evaluation{}, false, err
	}
	e, err := decode([]byte(val))
	if err != nil {
		return ror.Evaluation{}, false, err
	}
	r.logger.Debug("Redis cache hit", "key", key, "rate", e.Outcome.Rate)
	return e, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, e ror.Evaluation) error {
	data, err := encode(e)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return err
	}
	r.logger.Debug("Redis cache set", "key", key, "ttl", r.ttl)
	return nil
}

// encode is the stored form of an evaluation. Cause is not kept.
func encode(e ror.Evaluation) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding cache entry: %w", err)
	}
	return data, nil
}

func decode(data []byte) (ror.Evaluation, error) {
	var e ror.Evaluation
	if err := json.Unmarshal(data, &e); err != nil {
		return ror.Evaluation{}, fmt.Errorf("corrupted cache entry: %w", err)
	}
	return e, nil
}

// Ping checks the connection to the server.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
