package persistent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/pkg/postgres"
)

const (
	// Table
	usageEventsTable = "usage_events"

	// Columns
	eventIDColumn      = "id"
	eventColumn        = "event"
	clientIDColumn     = "client_id"
	userAgentColumn    = "user_agent"
	successColumn      = "success"
	errorColumn        = "error"
	processingMSColumn = "processing_ms"
	metadataColumn     = "metadata"
	createdAtColumn    = "created_at"
)

// UsageEventRepo is append-only: rows are inserted, never updated.
type UsageEventRepo struct {
	*postgres.Postgres
}

func NewUsageEventRepo(pg *postgres.Postgres) *UsageEventRepo {
	return &UsageEventRepo{pg}
}

func (r *UsageEventRepo) Append(ctx context.Context, event *entity.UsageEvent) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("UsageEventRepo - Append - json.Marshal: %w", err)
	}

	sql, args, err := r.Builder.
		Insert(usageEventsTable).
		Columns(
			eventIDColumn,
			eventColumn,
			clientIDColumn,
			userAgentColumn,
			successColumn,
			errorColumn,
			processingMSColumn,
			metadataColumn,
			createdAtColumn,
		).
		Values(
			event.ID,
			event.Event,
			event.ClientID,
			event.UserAgent,
			event.Success,
			event.Error,
			event.ProcessingMS,
			metadata,
			event.CreatedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("UsageEventRepo - Append - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("UsageEventRepo - Append - executor.Exec: %w", err)
	}

	return nil
}
