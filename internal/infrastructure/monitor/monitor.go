// Package monitor records usage events and probes dependency health.
package monitor

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/internal/repo"
	"github.com/quoteviral/quoteviral/pkg/logger"
)

// Tracker appends usage events to the event log. All writes are
// best-effort: a failed append is logged and never masks the caller's
// error path.
type Tracker struct {
	events repo.UsageEventRepo
	logger logger.Interface
}

func NewTracker(events repo.UsageEventRepo, l logger.Interface) *Tracker {
	return &Tracker{events: events, logger: l}
}

func (t *Tracker) Track(ctx context.Context, event entity.UsageEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	err := t.events.Append(ctx, &event)
	if err != nil {
		t.logger.Warn("Tracker - Track - t.events.Append failed: event=%s, error=%v", event.Event, err)
	}
}

func (t *Tracker) Performance(ctx context.Context, operation string, duration time.Duration, metadata map[string]string) {
	if metadata == nil {
		metadata = map[string]string{}
	}
	metadata["operation"] = operation
	metadata["duration_ms"] = strconv.FormatInt(duration.Milliseconds(), 10)

	t.Track(ctx, entity.UsageEvent{
		Event:    "performance",
		Success:  true,
		Metadata: metadata,
	})
}

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// Health runs the configured probes and summarizes the result.
type Health struct {
	probes []Probe
	logger logger.Interface
}

func NewHealth(l logger.Interface, probes ...Probe) *Health {
	return &Health{probes: probes, logger: l}
}

func (h *Health) Check(ctx context.Context) entity.Health {
	services := make(map[string]bool, len(h.probes))
	healthy := true

	for _, probe := range h.probes {
		err := probe.Check(ctx)
		if err != nil {
			h.logger.Warn("Health - Check - probe %s failed: %v", probe.Name, err)
			healthy = false
		}
		services[probe.Name] = err == nil
	}

	status := "healthy"
	if !healthy {
		status = "degraded"
	}

	return entity.Health{
		Status:    status,
		Services:  services,
		Timestamp: time.Now(),
	}
}
