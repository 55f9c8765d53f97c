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
	uploadsTable = "uploads"

	// Columns
	imageIDColumn      = "image_id"
	userIDColumn       = "user_id"
	categoryColumn     = "category"
	originalNameColumn = "original_name"
	contentTypeColumn  = "content_type"
	sizeColumn         = "size"
	variantKeysColumn  = "variant_keys"
	uploadedAtColumn   = "uploaded_at"
)

type UploadMetadataRepo struct {
	*postgres.Postgres
}

func NewUploadMetadataRepo(pg *postgres.Postgres) *UploadMetadataRepo {
	return &UploadMetadataRepo{pg}
}

func (r *UploadMetadataRepo) Create(ctx context.Context, upload *entity.Upload) error {
	variantKeys, err := json.Marshal(upload.VariantKeys)
	if err != nil {
		return fmt.Errorf("UploadMetadataRepo - Create - json.Marshal: %w", err)
	}

	sql, args, err := r.Builder.
		Insert(uploadsTable).
		Columns(
			imageIDColumn,
			userIDColumn,
			categoryColumn,
			originalNameColumn,
			contentTypeColumn,
			sizeColumn,
			variantKeysColumn,
			uploadedAtColumn,
		).
		Values(
			upload.ImageID,
			upload.UserID,
			upload.Category,
			upload.OriginalName,
			upload.ContentType,
			upload.Size,
			variantKeys,
			upload.UploadedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("UploadMetadataRepo - Create - r.Builder.ToSql: %w", err)
	}

	// Pool / Tx
	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("UploadMetadataRepo - Create - executor.Exec: %w", err)
	}

	return nil
}
