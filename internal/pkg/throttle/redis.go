package throttle

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisThrottle implements Throttle with a Redis SET NX lock per key.
type RedisThrottle struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed throttle.
func NewRedis(client *redis.Client) *RedisThrottle {
	return &RedisThrottle{
		client: client,
		prefix: "throttle:",
	}
}

// Acquire sets the key if absent. The key expires after ttl, which bounds the
// cooldown even if the caller never touches it again.
func (t *RedisThrottle) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return t.client.SetNX(ctx, t.prefix+key, time.Now().Unix(), ttl).Result()
}
