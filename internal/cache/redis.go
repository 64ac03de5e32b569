package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shared-city/backend/internal/config"
)

const (
	RedisTypeSingle  = "redis"
	RedisTypeCluster = "redisCluster"
	TypeMemory       = "memory"
	pingTimeout      = time.Millisecond * 1500
)

// NewRedis connects to the configured single node or cluster and pings it.
// The client is closed when the ping fails.
func NewRedis(ctx context.Context, cfg config.Cache) (redis.UniversalClient, error) {
	var client redis.UniversalClient
	switch cfg.Type {
	case RedisTypeSingle:
		client = newRedis(cfg)
	case RedisTypeCluster:
		client = newRedisCluster(cfg)
	default:
		return nil, fmt.Errorf("wrong redis type %q", cfg.Type)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s ping: %w", cfg.Type, err)
	}

	return client, nil
}

func newRedis(cfg config.Cache) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.Address,
		Password:        cfg.Redis.Password,
		DB:              0,
		PoolSize:        cfg.Redis.PoolSize,
		ConnMaxIdleTime: 170 * time.Second,
		DialTimeout:     time.Second * 1,
		ReadTimeout:     time.Second * 1,
		WriteTimeout:    time.Second * 1,
	})
}

func newRedisCluster(cfg config.Cache) *redis.ClusterClient {
	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:           cfg.RedisCluster.Addresses,
		Password:        cfg.RedisCluster.Password,
		RouteRandomly:   false, // send read operations only to master nodes
		ReadOnly:        false,
		PoolSize:        cfg.RedisCluster.PoolSize,
		ConnMaxLifetime: 15 * time.Minute,
		DialTimeout:     time.Second * 1,
		ReadTimeout:     time.Second * 1,
		WriteTimeout:    time.Second * 1,
	})
}
