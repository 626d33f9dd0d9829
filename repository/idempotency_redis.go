package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyTTL         = 24 * time.Hour
	idempotencyPlaceholder = "pending"
)

// RedisIdempotencyStore backs idempotent order creation: SETNX claims a key,
// the created order id is recorded under it, and replays read it back.
type RedisIdempotencyStore struct {
	Client *redis.Client
}

func NewRedisIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{Client: client}
}

// Claim returns true when this request is the first holder of the key.
func (s *RedisIdempotencyStore) Claim(ctx context.Context, key string) (bool, error) {
	return s.Client.SetNX(ctx, key, idempotencyPlaceholder, idempotencyTTL).Result()
}

func (s *RedisIdempotencyStore) Record(ctx context.Context, key string, orderID uint) error {
	return s.Client.Set(ctx, key, strconv.FormatUint(uint64(orderID), 10), idempotencyTTL).Err()
}

// Lookup returns the recorded order id for a claimed key. False when the key
// is gone or only the claim placeholder is stored (creation still in flight
// or it failed before recording).
func (s *RedisIdempotencyStore) Lookup(ctx context.Context, key string) (uint, bool, error) {
	v, err := s.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}
