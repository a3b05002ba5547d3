package occupancy

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient подмножество *redis.Client, которое использует кэш
type RedisClient interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
