package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shared-city/backend/internal/domain"
)

var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s failed: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("redis get %s failed: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s failed: %w", key, err)
	}
	return nil
}

// Consume deletes key in one round trip when it holds expected.
func (s *RedisStore) Consume(ctx context.Context, key string, expected string) (bool, error) {
	deleted, err := consumeScript.Run(ctx, s.client, []string{key}, expected).Int()
	if err != nil {
		return false, fmt.Errorf("redis consume %s failed: %w", key, err)
	}
	return deleted == 1, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Append(ctx context.Context, key string, limit int, ttl time.Duration, values ...string) error {
	if len(values) == 0 {
		return nil
	}

	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, args...)
	if limit > 0 {
		pipe.LTrim(ctx, key, int64(-limit), -1)
	}
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis append %s failed: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Range(ctx context.Context, key string) ([]string, error) {
	values, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s failed: %w", key, err)
	}
	return values, nil
}
