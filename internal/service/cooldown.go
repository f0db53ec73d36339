package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CooldownStore throttles repeated actions behind a per-key window.
type CooldownStore interface {
	// TryAcquire reports whether the key was free; when it was, the key
	// is held for ttl.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type redisCooldown struct {
	client *redis.Client
}

// NewRedisCooldown builds a CooldownStore over Redis SETNX keys.
func NewRedisCooldown(client *redis.Client) CooldownStore {
	return &redisCooldown{client: client}
}

func (r *redisCooldown) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, "1", ttl).Result()
}
