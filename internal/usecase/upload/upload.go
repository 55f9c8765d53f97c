// Package upload validates, preprocesses and stores user base images,
// deriving the fixed variant set each generation request draws from.
package upload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/quoteviral/quoteviral/internal/dto"
	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/internal/infrastructure"
	"github.com/quoteviral/quoteviral/internal/infrastructure/transform"
	"github.com/quoteviral/quoteviral/internal/repo"
	"github.com/quoteviral/quoteviral/internal/usecase"
	"github.com/quoteviral/quoteviral/internal/validation"
	"github.com/quoteviral/quoteviral/pkg/logger"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// UseCase -.
type UseCase struct {
	blob       repo.BlobRepo
	metadata   repo.UploadMetadataRepo
	transactor repo.Transactor
	limiter    usecase.Limiter
	tracker    infrastructure.UsageTracker
	logger     logger.Interface

	maxFileSize int64
	now         func() time.Time
}

var _ usecase.UploadUseCase = (*UseCase)(nil)

// New -.
func New(
	blob repo.BlobRepo,
	metadata repo.UploadMetadataRepo,
	transactor repo.Transactor,
	limiter usecase.Limiter,
	tracker infrastructure.UsageTracker,
	l logger.Interface,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		blob:       blob,
		metadata:   metadata,
		transactor: transactor,
		limiter:    limiter,
		tracker:    tracker,
		logger:     l,

		maxFileSize: validation.MaxFileSize,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Upload validates the file, standardizes it, derives the variant set and
// persists blobs plus metadata. The returned ImageID is what /api/generate
// accepts as imageId.
func (uc *UseCase) Upload(ctx context.Context, caller dto.Caller, params dto.UploadParams) (*dto.UploadResult, error) {
	start := time.Now()

	// 1. rate gate, upload bucket
	decision := uc.limiter.Check(ctx, caller.ClientID, "upload")
	if !decision.Allowed {
		err := &errs.RateLimitedError{RetryAfter: decision.RetryAfter, ResetAt: decision.ResetAt}
		uc.track(ctx, caller, start, err, nil)

		return nil, err
	}

	// 2. validate size, type and extension
	if err := validation.Image(params.Size, params.ContentType, params.OriginalName, uc.maxFileSize); err != nil {
		uc.track(ctx, caller, start, err, nil)

		return nil, fmt.Errorf("UploadUseCase - Upload - validation.Image: %w", err)
	}

	// 3. decode and standardize the master raster
	img, err := transform.Decode(params.Data)
	if err != nil {
		uc.track(ctx, caller, start, err, nil)

		return nil, fmt.Errorf("UploadUseCase - Upload: %w", err)
	}

	img = transform.UploadPreprocess(params.Category).Apply(img)

	userID := params.UserID
	if userID == "" {
		userID = "anonymous"
	}
	imageID := fmt.Sprintf("%s/%d", userID, uc.now().UnixMilli())

	// 4. derive and store each variant
	variantKeys := make(map[string]string)
	processedSizes := make(map[string]int)

	for _, spec := range transform.UploadVariants() {
		variant := img
		if spec.Width > 0 && spec.Height > 0 {
			variant = transform.Pipeline{transform.ResizeCover(spec.Width, spec.Height)}.Apply(img)
		}

		encoded, err := transform.Encode(variant, spec.Format, spec.Quality)
		if err != nil {
			uc.track(ctx, caller, start, err, nil)

			return nil, fmt.Errorf("UploadUseCase - Upload - transform.Encode: %w", err)
		}

		key := repo.UploadKey(imageID, spec.Name, spec.Format.Extension())

		metadata := map[string]string{
			"original-name": validation.Filename(baseName(params.OriginalName)),
			"variant":       spec.Name,
			"category":      params.Category,
			"user-id":       userID,
		}

		if err := uc.blob.Upload(ctx, key, encoded, spec.Format.ContentType(), metadata); err != nil {
			uc.track(ctx, caller, start, err, nil)

			return nil, &errs.UpstreamError{Op: "UploadUseCase - Upload - blob.Upload", Err: err}
		}

		variantKeys[spec.Name] = key
		processedSizes[spec.Name] = len(encoded)
	}

	uploadedAt := uc.now()

	// 5. metadata row and usage event commit together
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.metadata.Create(ctx, &entity.Upload{
			ImageID:      imageID,
			UserID:       userID,
			Category:     params.Category,
			OriginalName: params.OriginalName,
			ContentType:  params.ContentType,
			Size:         params.Size,
			VariantKeys:  variantKeys,
			UploadedAt:   uploadedAt,
		})
	})
	if err != nil {
		uc.track(ctx, caller, start, err, nil)

		return nil, &errs.UpstreamError{Op: "UploadUseCase - Upload - metadata.Create", Err: err}
	}

	uc.track(ctx, caller, start, nil, map[string]string{
		"image_id": imageID,
		"size":     fmt.Sprintf("%d", params.Size),
	})
	uc.tracker.Performance(ctx, "image_upload", time.Since(start), map[string]string{
		"variants": fmt.Sprintf("%d", len(variantKeys)),
	})

	variants := make([]string, 0, len(variantKeys))
	for _, spec := range transform.UploadVariants() {
		variants = append(variants, spec.Name)
	}

	return &dto.UploadResult{
		ImageID:  imageID,
		Variants: variants,
		Metadata: dto.UploadMetadata{
			OriginalSize:   params.Size,
			ProcessedSizes: processedSizes,
			Category:       params.Category,
			UploadedAt:     uploadedAt,
		},
	}, nil
}

func (uc *UseCase) track(ctx context.Context, caller dto.Caller, start time.Time, err error, metadata map[string]string) {
	e := entity.UsageEvent{
		Event:        "image_upload",
		ClientID:     caller.ClientID,
		UserAgent:    caller.UserAgent,
		Success:      err == nil,
		ProcessingMS: time.Since(start).Milliseconds(),
		Metadata:     metadata,
	}
	if err != nil {
		e.Error = err.Error()
	}

	uc.tracker.Track(ctx, e)
}

func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
