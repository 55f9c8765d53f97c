package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quoteviral/quoteviral/pkg/redisclient"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// CacheRepo keeps encoded generation results keyed by fingerprint.
type CacheRepo struct {
	*redisclient.RedisClient
}

func NewCacheRepo(rc *redisclient.RedisClient) *CacheRepo {
	return &CacheRepo{rc}
}

func (r *CacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrRecordNotFound
		}

		return nil, fmt.Errorf("CacheRepo - Get - r.Client.Get: %w", err)
	}

	return b, nil
}

func (r *CacheRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.Client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("CacheRepo - Set - r.Client.Set: %w", err)
	}

	return nil
}
