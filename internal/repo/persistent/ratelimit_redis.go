package persistent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/pkg/redisclient"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// LimitRepo stores fixed-window counters. The TTL equals the window, so
// stale records expire on their own.
type LimitRepo struct {
	*redisclient.RedisClient
}

func NewLimitRepo(rc *redisclient.RedisClient) *LimitRepo {
	return &LimitRepo{rc}
}

func (r *LimitRepo) Get(ctx context.Context, key string) (*entity.LimitRecord, error) {
	b, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrRecordNotFound
		}

		return nil, fmt.Errorf("LimitRepo - Get - r.Client.Get: %w", err)
	}

	var record entity.LimitRecord
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, fmt.Errorf("LimitRepo - Get - json.Unmarshal: %w", err)
	}

	return &record, nil
}

func (r *LimitRepo) Set(ctx context.Context, key string, record *entity.LimitRecord, ttl time.Duration) error {
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("LimitRepo - Set - json.Marshal: %w", err)
	}

	err = r.Client.Set(ctx, key, b, ttl).Err()
	if err != nil {
		return fmt.Errorf("LimitRepo - Set - r.Client.Set: %w", err)
	}

	return nil
}
