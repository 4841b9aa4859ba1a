package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"movematch/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client and pings it at startup.
//
// Supported env vars (read by the caller):
//   - REDIS_ADDR (e.g. localhost:6379)
//   - REDIS_PASSWORD (optional)
func NewRedisClient(addr, password string) (*redis.Client, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return cli, nil
}

// RedisBacklogCache is the short-TTL gauge cache in front of the reconciler's
// backlog count.

type RedisBacklogCache struct {
	cli *redis.Client
}

var _ interfaces.IBacklogCache = (*RedisBacklogCache)(nil)

func NewRedisBacklogCache(cli *redis.Client) *RedisBacklogCache {
	return &RedisBacklogCache{cli: cli}
}

func (c *RedisBacklogCache) GetCount(ctx context.Context, key string) (int, bool, error) {
	v, err := c.cli.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	count, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, nil
	}
	return count, true, nil
}

func (c *RedisBacklogCache) SetCount(ctx context.Context, key string, count int, ttl time.Duration) error {
	return c.cli.Set(ctx, key, strconv.Itoa(count), ttl).Err()
}
