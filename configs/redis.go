package configs

import (
	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when no address is configured; callers treat a
// nil client as "idempotency disabled".
func ConnectRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
