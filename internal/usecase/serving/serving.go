// Package serving returns stored assets re-encoded for the requesting
// client: format negotiation from Accept, quality reduction under
// Save-Data, sharpening for high-DPI mobile screens, plus ETag-based
// conditional responses.
package serving

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/quoteviral/quoteviral/internal/dto"
	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/internal/infrastructure/caching"
	"github.com/quoteviral/quoteviral/internal/infrastructure/transform"
	"github.com/quoteviral/quoteviral/internal/repo"
	"github.com/quoteviral/quoteviral/internal/usecase"
	"github.com/quoteviral/quoteviral/pkg/logger"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

const _maxTemplates = 50

const _serveVary = "Accept, User-Agent, DPR, Save-Data"

// UseCase -.
type UseCase struct {
	blob   repo.BlobRepo
	logger logger.Interface
}

var _ usecase.ServingUseCase = (*UseCase)(nil)

// New -.
func New(blob repo.BlobRepo, l logger.Interface) *UseCase {
	return &UseCase{blob: blob, logger: l}
}

// Serve looks the asset up under generated/ first, then templates/, and
// returns it optimized for the client. The ETag is computed over the
// stored bytes, so conditional requests short-circuit before any
// re-encoding happens.
func (uc *UseCase) Serve(ctx context.Context, assetPath string, client dto.ClientCapabilities, ifNoneMatch string) (*dto.ServeResult, error) {
	data, contentClass, err := uc.lookup(ctx, assetPath)
	if err != nil {
		return nil, err
	}

	etag := caching.ETag(data)

	headers := caching.Headers(contentClass, caching.TierOrigin)
	headers["Vary"] = _serveVary

	if caching.NotModified(ifNoneMatch, etag) {
		return &dto.ServeResult{
			ETag:        etag,
			NotModified: true,
			Headers:     headers,
		}, nil
	}

	ext := strings.TrimPrefix(path.Ext(assetPath), ".")
	format, quality, sharpen := strategy(ext, client)

	optimized, contentType, reencoded := uc.optimize(assetPath, data, ext, format, quality, sharpen)
	headers["X-Optimized"] = fmt.Sprintf("%t", reencoded)

	return &dto.ServeResult{
		Data:        optimized,
		ContentType: contentType,
		ETag:        etag,
		Headers:     headers,
	}, nil
}

// Templates lists available template metadata, capped at 50 entries.
// category and language accept "all".
func (uc *UseCase) Templates(ctx context.Context, category, language string) ([]entity.Template, error) {
	prefix := repo.PrefixTemplates
	if category != "" && category != "all" {
		prefix += category + "/"
	}

	objects, err := uc.blob.List(ctx, prefix, _maxTemplates)
	if err != nil {
		return nil, &errs.UpstreamError{Op: "ServingUseCase - Templates - blob.List", Err: err}
	}

	templates := make([]entity.Template, 0, len(objects))
	for _, obj := range objects {
		t := entity.Template{
			ID:         strings.TrimPrefix(obj.Key, repo.PrefixTemplates),
			Name:       obj.Metadata["name"],
			Category:   obj.Metadata["category"],
			Language:   obj.Metadata["language"],
			Dimensions: obj.Metadata["dimensions"],
			CreatedAt:  obj.Uploaded.UTC().Format(time.RFC3339),
		}
		if t.Name == "" {
			t.Name = t.ID
		}
		if t.Category == "" {
			t.Category = "general"
		}
		if t.Language == "" {
			t.Language = "en"
		}
		if t.Dimensions == "" {
			t.Dimensions = "1200x800"
		}
		if tags := obj.Metadata["tags"]; tags != "" {
			t.Tags = strings.Split(tags, ",")
		}

		if language != "" && language != "all" && t.Language != language {
			continue
		}

		templates = append(templates, t)
	}

	return templates, nil
}

func (uc *UseCase) lookup(ctx context.Context, assetPath string) ([]byte, string, error) {
	data, err := uc.blob.Download(ctx, repo.PrefixGenerated+assetPath)
	if err == nil {
		return data, "generated", nil
	}
	if !errors.Is(err, errs.ErrRecordNotFound) {
		return nil, "", &errs.UpstreamError{Op: "ServingUseCase - lookup - blob.Download", Err: err}
	}

	data, err = uc.blob.Download(ctx, repo.PrefixTemplates+assetPath)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("ServingUseCase - lookup - asset %q: %w", assetPath, errs.ErrRecordNotFound)
		}

		return nil, "", &errs.UpstreamError{Op: "ServingUseCase - lookup - blob.Download", Err: err}
	}

	return data, "templates", nil
}

// optimize re-encodes for the negotiated target. A source already in the
// target format with no filtering passes through untouched, as does
// anything the codec cannot decode.
func (uc *UseCase) optimize(assetPath string, data []byte, ext string, format entity.ImageFormat, quality int, sharpen float64) ([]byte, string, bool) {
	if ext == string(format) || (ext == "jpg" && format == entity.FormatJPEG) {
		if sharpen == 0 {
			return data, format.ContentType(), false
		}
	}

	img, err := transform.Decode(data)
	if err != nil {
		uc.logger.Warn("ServingUseCase - optimize - undecodable asset served raw: path=%s", assetPath)

		return data, extContentType(ext), false
	}

	if sharpen > 0 {
		img = transform.Pipeline{transform.Sharpen(sharpen)}.Apply(img)
	}

	encoded, err := transform.Encode(img, format, quality)
	if err != nil {
		uc.logger.Warn("ServingUseCase - optimize - encode failed, served raw: path=%s, error=%v", assetPath, err)

		return data, extContentType(ext), false
	}

	return encoded, format.ContentType(), true
}

// strategy picks the output format, quality and sharpening for a client.
// AVIF support negotiates to WEBP since no AVIF encoder is available.
func strategy(ext string, client dto.ClientCapabilities) (entity.ImageFormat, int, float64) {
	// already optimal for this client, skip filtering entirely
	if ext == "webp" && client.SupportsWebP {
		return entity.FormatWEBP, 80, 0
	}

	format := entity.FormatJPEG
	quality := 80

	switch {
	case client.SupportsWebP || client.SupportsAVIF:
		format = entity.FormatWEBP
		if client.SaveData {
			quality = 65
		}
	case ext == "png":
		format = entity.FormatPNG
		quality = 90
	}

	if client.SaveData {
		quality -= 20
		if quality < 30 {
			quality = 30
		}
	}

	var sharpen float64
	if client.IsMobile && client.DevicePixelRatio > 1 {
		sharpen = 1.2
	}

	return format, quality, sharpen
}

func extContentType(ext string) string {
	switch ext {
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	case "avif":
		return "image/avif"
	default:
		return "image/jpeg"
	}
}
