package entity

import "time"

// LimitRule is the per-action window configuration.
type LimitRule struct {
	Requests int
	Window   time.Duration
}

// LimitRecord is the stored per (client, action) counter. It lives in the
// key-value store with TTL equal to the window length.
type LimitRecord struct {
	Count   int   `json:"count"`
	ResetAt int64 `json:"reset_at"` // unix seconds
}

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	ResetAt    time.Time
}
