package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenBlacklist records revoked tokens until their natural expiry.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

// RedisBlacklist keeps revoked tokens in Redis, expiring each entry with
// the token's remaining lifetime.
type RedisBlacklist struct {
	client *redis.Client
}

var _ TokenBlacklist = (*RedisBlacklist)(nil)

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

func (b *RedisBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	return b.client.Set(ctx, "blacklist:"+token, 1, ttl).Err()
}

func (b *RedisBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
