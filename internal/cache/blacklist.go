package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"fleet-telemetry-service/internal/config"
)

const blacklistPrefix = "blacklist:refresh:"

// TokenBlacklist stores revoked refresh-token JTIs in redis. Entries
// expire together with the token they revoke.
type TokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(cfg config.RedisConfig) (*TokenBlacklist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &TokenBlacklist{client: client}, nil
}

func (b *TokenBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}
	return b.client.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

func (b *TokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *TokenBlacklist) Close() error {
	return b.client.Close()
}
