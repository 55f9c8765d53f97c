// Package variants derives per-platform output variants from one encoded
// base image.
package variants

import (
	"context"
	"fmt"

	"github.com/quoteviral/quoteviral/internal/catalog"
	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/internal/infrastructure/transform"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate produces one variant per known format key. Unknown keys are
// silently skipped; callers check which keys are present. A failing variant
// never aborts its siblings; its error is reported in the second map.
func (g *Generator) Generate(ctx context.Context, base []byte, formatKeys []string) (map[string]entity.Variant, map[string]error, error) {
	decoded, err := transform.Decode(base)
	if err != nil {
		return nil, nil, fmt.Errorf("Generator - Generate - transform.Decode: %w", err)
	}

	results := make(map[string]entity.Variant, len(formatKeys))
	failures := make(map[string]error)

	for _, key := range formatKeys {
		if err := ctx.Err(); err != nil {
			return results, failures, fmt.Errorf("Generator - Generate: %w", err)
		}

		preset, ok := catalog.Format(key)
		if !ok {
			continue
		}

		pipeline := transform.EnhancementProfile(preset.Profile, preset.Width, preset.Height)
		processed := pipeline.Apply(decoded)

		encoded, err := transform.Encode(processed, preset.Format, preset.Quality)
		if err != nil {
			failures[key] = fmt.Errorf("Generator - Generate - transform.Encode: %w", err)
			continue
		}

		bounds := processed.Bounds()
		results[key] = entity.Variant{
			Data:    encoded,
			Width:   bounds.Dx(),
			Height:  bounds.Dy(),
			Format:  preset.Format,
			Quality: preset.Quality,
			Profile: preset.Profile,
		}
	}

	return results, failures, nil
}
