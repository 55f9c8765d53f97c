package repo

import (
	"context"
	"time"

	"github.com/quoteviral/quoteviral/internal/entity"
)

// BlobInfo describes one stored object without its payload.
type BlobInfo struct {
	Key         string
	Size        int64
	ContentType string
	Metadata    map[string]string
	Uploaded    time.Time
}

type (
	// BlobRepo is the opaque blob store (head/get/put/list).
	BlobRepo interface {
		Upload(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error
		Download(ctx context.Context, key string) ([]byte, error)
		Head(ctx context.Context, key string) (*BlobInfo, error)
		List(ctx context.Context, prefix string, limit int) ([]BlobInfo, error)
	}

	// CacheRepo stores encoded response bytes under fingerprint keys.
	// Get returns errs.ErrRecordNotFound on a miss.
	CacheRepo interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	}

	// LimitRepo stores per (client, action) rate-limit records with TTL.
	// Get returns errs.ErrRecordNotFound when no record exists.
	LimitRepo interface {
		Get(ctx context.Context, key string) (*entity.LimitRecord, error)
		Set(ctx context.Context, key string, record *entity.LimitRecord, ttl time.Duration) error
	}

	// UploadMetadataRepo persists upload metadata.
	UploadMetadataRepo interface {
		Create(ctx context.Context, upload *entity.Upload) error
	}

	// UsageEventRepo is the append-only usage log.
	UsageEventRepo interface {
		Append(ctx context.Context, event *entity.UsageEvent) error
	}

	// Transactor runs a function within one storage transaction.
	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
