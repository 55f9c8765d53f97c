// Package ratelimit implements fixed-window per-client, per-action request
// limiting over a key-value store with expiry.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quoteviral/quoteviral/internal/catalog"
	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/internal/repo"
	"github.com/quoteviral/quoteviral/pkg/logger"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// Limiter counts requests in discrete windows that reset wholesale.
//
// The increment is a read-modify-write without cross-request locking:
// concurrent requests from one client within the same instant may under- or
// over-count by a small margin. That slack is an accepted trade-off, not a
// bug; availability is preferred over strict enforcement.
type Limiter struct {
	store  repo.LimitRepo
	logger logger.Interface
	now    func() time.Time
}

func New(store repo.LimitRepo, l logger.Interface, opts ...Option) *Limiter {
	limiter := &Limiter{
		store:  store,
		logger: l,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(limiter)
	}

	return limiter
}

// Check decides whether the request is allowed. If the backing store is
// unreachable the limiter fails open: the request is allowed and the
// condition is logged distinctly, never silently equated with a normal
// allow.
func (l *Limiter) Check(ctx context.Context, clientID, action string) entity.Decision {
	rule := catalog.LimitRule(action)
	key := fmt.Sprintf("ratelimit:%s:%s", action, clientID)
	now := l.now()

	record, err := l.store.Get(ctx, key)
	if err != nil && !errors.Is(err, errs.ErrRecordNotFound) {
		l.logger.Warn("Limiter - Check - store unreachable, failing open: action=%s, error=%v", action, err)

		return entity.Decision{Allowed: true}
	}

	// no record, or the window has reset: start a fresh window
	if record == nil || now.Unix() >= record.ResetAt {
		resetAt := now.Add(rule.Window)
		fresh := &entity.LimitRecord{Count: 1, ResetAt: resetAt.Unix()}

		if err := l.store.Set(ctx, key, fresh, rule.Window); err != nil {
			l.logger.Warn("Limiter - Check - store unreachable, failing open: action=%s, error=%v", action, err)
		}

		return entity.Decision{Allowed: true, ResetAt: resetAt}
	}

	resetAt := time.Unix(record.ResetAt, 0)

	if record.Count >= rule.Requests {
		return entity.Decision{
			Allowed:    false,
			RetryAfter: resetAt.Sub(now),
			ResetAt:    resetAt,
		}
	}

	record.Count++
	if err := l.store.Set(ctx, key, record, rule.Window); err != nil {
		l.logger.Warn("Limiter - Check - store unreachable, failing open: action=%s, error=%v", action, err)
	}

	return entity.Decision{Allowed: true, ResetAt: resetAt}
}
