package entity

import (
	"time"

	"github.com/google/uuid"
)

// UsageEvent is one append-only record in the usage log. Events are written
// best-effort: a failed write is logged and never masks the caller's error.
type UsageEvent struct {
	ID           uuid.UUID         `json:"id"`
	Event        string            `json:"event"`
	ClientID     string            `json:"client_id"`
	UserAgent    string            `json:"user_agent"`
	Success      bool              `json:"success"`
	Error        string            `json:"error,omitempty"`
	ProcessingMS int64             `json:"processing_ms,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Health is the service-health summary returned by /api/health.
type Health struct {
	Status    string          `json:"status"` // healthy, degraded, error
	Services  map[string]bool `json:"services"`
	Timestamp time.Time       `json:"timestamp"`
}
