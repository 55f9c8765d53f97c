// Package generation implements the quote image pipeline: rate gate,
// response-cache probe, base image load, enhancement, text overlay and
// per-platform variant export.
package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quoteviral/quoteviral/internal/catalog"
	"github.com/quoteviral/quoteviral/internal/dto"
	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/internal/infrastructure"
	"github.com/quoteviral/quoteviral/internal/infrastructure/caching"
	"github.com/quoteviral/quoteviral/internal/infrastructure/transform"
	"github.com/quoteviral/quoteviral/internal/repo"
	"github.com/quoteviral/quoteviral/internal/usecase"
	"github.com/quoteviral/quoteviral/internal/validation"
	"github.com/quoteviral/quoteviral/pkg/logger"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// UseCase -.
type UseCase struct {
	blob     repo.BlobRepo
	cache    repo.CacheRepo
	limiter  usecase.Limiter
	renderer infrastructure.Renderer
	variants infrastructure.VariantGenerator
	tracker  infrastructure.UsageTracker
	logger   logger.Interface

	cacheTTL         time.Duration
	cpuTimeout       time.Duration
	batchConcurrency int
}

var _ usecase.GenerationUseCase = (*UseCase)(nil)

// New -.
func New(
	blob repo.BlobRepo,
	cache repo.CacheRepo,
	limiter usecase.Limiter,
	renderer infrastructure.Renderer,
	variants infrastructure.VariantGenerator,
	tracker infrastructure.UsageTracker,
	l logger.Interface,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		blob:     blob,
		cache:    cache,
		limiter:  limiter,
		renderer: renderer,
		variants: variants,
		tracker:  tracker,
		logger:   l,

		cacheTTL:         _defaultCacheTTL,
		cpuTimeout:       _defaultCPUTimeout,
		batchConcurrency: _defaultBatchConcurrency,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Generate renders one quote image. Single-format requests are served from
// the response cache when possible; multi-format requests always render.
func (uc *UseCase) Generate(ctx context.Context, caller dto.Caller, params dto.GenerateParams) (*dto.GenerateResult, error) {
	start := time.Now()

	// 1. rate gate
	decision := uc.limiter.Check(ctx, caller.ClientID, "generate")
	if !decision.Allowed {
		err := &errs.RateLimitedError{RetryAfter: decision.RetryAfter, ResetAt: decision.ResetAt}
		uc.track(ctx, caller, "quote_generation", start, err, nil)

		return nil, err
	}

	result, err := uc.generate(ctx, caller, params, start)
	if err != nil {
		return nil, err
	}

	uc.tracker.Performance(ctx, "quote_generation", time.Since(start), map[string]string{
		"cache_hit": fmt.Sprintf("%t", result.CacheHit),
	})

	return result, nil
}

// generate is the gate-free pipeline shared with batch items.
func (uc *UseCase) generate(ctx context.Context, caller dto.Caller, params dto.GenerateParams, start time.Time) (*dto.GenerateResult, error) {
	params.ApplyDefaults()

	// 2. validate and sanitize the quote text
	text, err := validation.Text(params.QuoteText, validation.MaxTextLength)
	if err != nil {
		uc.track(ctx, caller, "quote_generation", start, err, nil)

		return nil, fmt.Errorf("GenerationUseCase - generate - validation.Text: %w", err)
	}
	params.QuoteText = text

	single := len(params.OutputFormats) == 1
	cacheKey := caching.CacheKey(params)

	// 3. response-cache probe, single-format only
	if single {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
			uc.track(ctx, caller, "quote_generation", start, nil, map[string]string{
				"cache_hit": "true",
				"format":    params.OutputFormats[0],
			})

			return uc.singleResult(params.OutputFormats[0], cached, true), nil
		} else if !errors.Is(err, errs.ErrRecordNotFound) {
			uc.logger.Warn("GenerationUseCase - generate - cache.Get failed: key=%s, error=%v", cacheKey, err)
		}
	}

	// 4. load the base image, optimized variant first
	base, err := uc.loadBase(ctx, params.ImageID)
	if err != nil {
		uc.track(ctx, caller, "quote_generation", start, err, nil)

		return nil, err
	}

	// 5. enhance and overlay, bounded by the CPU budget
	cpuCtx, cancel := context.WithTimeout(ctx, uc.cpuTimeout)
	defer cancel()

	overlaid, err := uc.render(cpuCtx, base, params)
	if err != nil {
		uc.track(ctx, caller, "quote_generation", start, err, nil)

		return nil, err
	}

	// 6. fan out into the requested platform variants
	variants, failures, err := uc.variants.Generate(cpuCtx, overlaid, params.OutputFormats)
	if err != nil {
		uc.track(ctx, caller, "quote_generation", start, err, nil)

		return nil, fmt.Errorf("GenerationUseCase - generate - variants.Generate: %w", err)
	}

	for key, ferr := range failures {
		uc.logger.Warn("GenerationUseCase - generate - variant failed: format=%s, error=%v", key, ferr)
	}

	if len(variants) == 0 {
		var err error
		if len(failures) > 0 {
			err = &errs.UpstreamError{Op: "GenerationUseCase - generate - variants", Err: errors.New("all variants failed")}
		} else {
			err = &errs.ValidationError{Reason: "no valid output formats requested"}
		}
		uc.track(ctx, caller, "quote_generation", start, err, nil)

		return nil, err
	}

	// 7. store the outputs
	generationID := newGenerationID()

	stored, err := uc.store(ctx, generationID, variants, params)
	if err != nil {
		uc.track(ctx, caller, "quote_generation", start, err, nil)

		return nil, err
	}

	uc.track(ctx, caller, "quote_generation", start, nil, map[string]string{
		"cache_hit":     "false",
		"generation_id": generationID,
		"formats":       fmt.Sprintf("%d", len(stored)),
	})

	// 8. single format: cache the bytes and return them inline
	if single {
		if v, ok := variants[params.OutputFormats[0]]; ok {
			if err := uc.cache.Set(ctx, cacheKey, v.Data, uc.cacheTTL); err != nil {
				uc.logger.Warn("GenerationUseCase - generate - cache.Set failed: key=%s, error=%v", cacheKey, err)
			}

			result := uc.singleResult(params.OutputFormats[0], v.Data, false)
			result.GenerationID = generationID

			return result, nil
		}
	}

	return &dto.GenerateResult{
		GenerationID: generationID,
		VariantURLs:  stored,
		Metadata: dto.GenerateMetadata{
			Quote:     params.QuoteText,
			Category:  params.Category,
			Language:  params.Language,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
			Formats:   params.OutputFormats,
		},
	}, nil
}

// loadBase fetches the preprocessed upload, falling back to the lossless
// original for uploads made before the optimized variant existed.
func (uc *UseCase) loadBase(ctx context.Context, imageID string) ([]byte, error) {
	data, err := uc.blob.Download(ctx, repo.UploadKey(imageID, "optimized", "webp"))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, errs.ErrRecordNotFound) {
		return nil, &errs.UpstreamError{Op: "GenerationUseCase - loadBase - blob.Download", Err: err}
	}

	data, err = uc.blob.Download(ctx, repo.UploadKey(imageID, "original", "png"))
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return nil, fmt.Errorf("GenerationUseCase - loadBase - image %q: %w", imageID, errs.ErrRecordNotFound)
		}

		return nil, &errs.UpstreamError{Op: "GenerationUseCase - loadBase - blob.Download", Err: err}
	}

	return data, nil
}

// render applies caller manipulations and mood enhancement, then composites
// the text overlay.
func (uc *UseCase) render(ctx context.Context, base []byte, params dto.GenerateParams) ([]byte, error) {
	img, err := transform.Decode(base)
	if err != nil {
		return nil, fmt.Errorf("GenerationUseCase - render: %w", err)
	}

	var pipeline transform.Pipeline
	if m := params.ImageManipulation; m != nil {
		if m.Rotation != 0 {
			pipeline = append(pipeline, transform.Rotate(m.Rotation))
		}
		if m.CropWidth > 0 && m.CropHeight > 0 {
			pipeline = append(pipeline, transform.ResizeCover(m.CropWidth, m.CropHeight))
		}
	}
	pipeline = append(pipeline, transform.CategoryProfile(params.Category)...)
	pipeline = append(pipeline, transform.BackgroundTreatment(params.OverlayStyle)...)

	img = pipeline.Apply(img)

	processed, err := transform.Encode(img, entity.FormatPNG, 100)
	if err != nil {
		return nil, fmt.Errorf("GenerationUseCase - render: %w", err)
	}

	overlaid, err := uc.renderer.Overlay(ctx, processed, params.QuoteText, textStyle(params), params.OverlayStyle)
	if err != nil {
		return nil, fmt.Errorf("GenerationUseCase - render - renderer.Overlay: %w", err)
	}

	return overlaid, nil
}

// store persists each variant and returns its serving path keyed by format.
func (uc *UseCase) store(ctx context.Context, generationID string, variants map[string]entity.Variant, params dto.GenerateParams) (map[string]string, error) {
	urls := make(map[string]string, len(variants))

	var lastErr error
	for key, v := range variants {
		objectKey := repo.GeneratedKey(generationID, key, v.Format.Extension())

		metadata := map[string]string{
			"generation-id": generationID,
			"format":        key,
			"category":      params.Category,
			"language":      params.Language,
			"quote":         truncate(params.QuoteText, 100),
		}

		if err := uc.blob.Upload(ctx, objectKey, v.Data, v.Format.ContentType(), metadata); err != nil {
			uc.logger.Error(err, "GenerationUseCase - store - blob.Upload")
			lastErr = err

			continue
		}

		urls[key] = "/serve/" + objectKey[len(repo.PrefixGenerated):]
	}

	if len(urls) == 0 {
		return nil, &errs.UpstreamError{Op: "GenerationUseCase - store - blob.Upload", Err: lastErr}
	}

	return urls, nil
}

func (uc *UseCase) singleResult(formatKey string, data []byte, cacheHit bool) *dto.GenerateResult {
	format := entity.FormatJPEG
	if f, ok := catalog.Format(formatKey); ok {
		format = f.Format
	}

	return &dto.GenerateResult{
		CacheHit: cacheHit,
		Image:    data,
		Format:   format,
		Filename: fmt.Sprintf("quote-%s.%s", formatKey, format.Extension()),
	}
}

// track records one generation outcome; err == nil means success.
func (uc *UseCase) track(ctx context.Context, caller dto.Caller, event string, start time.Time, err error, metadata map[string]string) {
	e := entity.UsageEvent{
		Event:        event,
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

// textStyle resolves the font preset and applies caller overrides.
func textStyle(p dto.GenerateParams) entity.TextStyle {
	preset := catalog.Font(p.FontID)

	style := entity.TextStyle{
		FontFamily: preset.Family,
		FontSize:   preset.Size,
		FontWeight: preset.Weight,
		Color:      preset.Color,
		LineHeight: preset.LineHeight,
		Alignment:  entity.Alignment(p.TextAlignment),
		Position:   entity.Position(p.TextPosition),
		Language:   p.Language,
	}

	if preset.ShadowColor != "" {
		style.Shadow = &entity.Shadow{
			Color:   preset.ShadowColor,
			Blur:    preset.ShadowBlur,
			OffsetX: 2,
			OffsetY: 2,
		}
	}

	if p.FontSize > 0 {
		style.FontSize = p.FontSize
	}
	if p.FontColor != "" {
		style.Color = p.FontColor
	}

	return style
}

func newGenerationID() string {
	return fmt.Sprintf("gen_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
