package ratelimit

import "time"

type Option func(*Limiter)

// WithClock overrides the time source; tests use it to simulate window
// expiry.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}
