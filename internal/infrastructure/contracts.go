package infrastructure

import (
	"context"
	"time"

	"github.com/quoteviral/quoteviral/internal/entity"
)

type (
	// Renderer composites quote text onto a base image.
	Renderer interface {
		Overlay(ctx context.Context, base []byte, text string, style entity.TextStyle, overlayStyle string) ([]byte, error)
		CanvasSize() (int, int)
	}

	// VariantGenerator fans one encoded base image out into platform
	// variants. Unknown keys are skipped; per-key failures are isolated.
	VariantGenerator interface {
		Generate(ctx context.Context, base []byte, formatKeys []string) (map[string]entity.Variant, map[string]error, error)
	}

	// UsageTracker records usage and performance events best-effort.
	// Implementations must never propagate their own failures.
	UsageTracker interface {
		Track(ctx context.Context, event entity.UsageEvent)
		Performance(ctx context.Context, operation string, duration time.Duration, metadata map[string]string)
	}
)
