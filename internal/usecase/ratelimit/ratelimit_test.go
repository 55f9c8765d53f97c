package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/pkg/logger"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

type fakeLimitStore struct {
	records map[string]*entity.LimitRecord
	getErr  error
	setErr  error
}

func newFakeLimitStore() *fakeLimitStore {
	return &fakeLimitStore{records: map[string]*entity.LimitRecord{}}
}

func (s *fakeLimitStore) Get(_ context.Context, key string) (*entity.LimitRecord, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}

	r, ok := s.records[key]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}
	copied := *r

	return &copied, nil
}

func (s *fakeLimitStore) Set(_ context.Context, key string, record *entity.LimitRecord, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}

	copied := *record
	s.records[key] = &copied

	return nil
}

func TestCheck_AllowsUnderLimit(t *testing.T) {
	store := newFakeLimitStore()
	limiter := New(store, logger.New("error"))

	// batch allows 5 per hour
	for i := 0; i < 5; i++ {
		decision := limiter.Check(context.Background(), "1.2.3.4", "batch")
		assert.True(t, decision.Allowed, "request %d should be allowed", i+1)
	}
}

func TestCheck_DeniesOverLimit(t *testing.T) {
	store := newFakeLimitStore()
	now := time.Now()
	limiter := New(store, logger.New("error"), WithClock(func() time.Time { return now }))

	for i := 0; i < 5; i++ {
		limiter.Check(context.Background(), "1.2.3.4", "batch")
	}

	decision := limiter.Check(context.Background(), "1.2.3.4", "batch")
	require.False(t, decision.Allowed)
	assert.Greater(t, decision.RetryAfter, time.Duration(0))
	assert.Equal(t, now.Add(time.Hour).Unix(), decision.ResetAt.Unix())
}

func TestCheck_WindowResetClearsCount(t *testing.T) {
	store := newFakeLimitStore()
	now := time.Now()
	limiter := New(store, logger.New("error"), WithClock(func() time.Time { return now }))

	for i := 0; i < 6; i++ {
		limiter.Check(context.Background(), "1.2.3.4", "batch")
	}
	require.False(t, limiter.Check(context.Background(), "1.2.3.4", "batch").Allowed)

	// jump past the window boundary
	now = now.Add(time.Hour + time.Second)

	decision := limiter.Check(context.Background(), "1.2.3.4", "batch")
	assert.True(t, decision.Allowed)
}

func TestCheck_ClientsIsolated(t *testing.T) {
	store := newFakeLimitStore()
	limiter := New(store, logger.New("error"))

	for i := 0; i < 6; i++ {
		limiter.Check(context.Background(), "1.2.3.4", "batch")
	}

	assert.True(t, limiter.Check(context.Background(), "5.6.7.8", "batch").Allowed)
}

func TestCheck_ActionsIsolated(t *testing.T) {
	store := newFakeLimitStore()
	limiter := New(store, logger.New("error"))

	for i := 0; i < 6; i++ {
		limiter.Check(context.Background(), "1.2.3.4", "batch")
	}

	assert.True(t, limiter.Check(context.Background(), "1.2.3.4", "generate").Allowed)
}

func TestCheck_FailsOpenOnStoreError(t *testing.T) {
	store := newFakeLimitStore()
	store.getErr = errors.New("connection refused")
	limiter := New(store, logger.New("error"))

	decision := limiter.Check(context.Background(), "1.2.3.4", "generate")
	assert.True(t, decision.Allowed)
}

func TestCheck_UnknownActionUsesDefaultRule(t *testing.T) {
	store := newFakeLimitStore()
	now := time.Now()
	limiter := New(store, logger.New("error"), WithClock(func() time.Time { return now }))

	decision := limiter.Check(context.Background(), "1.2.3.4", "mystery")
	require.True(t, decision.Allowed)

	record, err := store.Get(context.Background(), "ratelimit:mystery:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 1, record.Count)
	assert.Equal(t, now.Add(time.Hour).Unix(), record.ResetAt)
}
