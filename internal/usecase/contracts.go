package usecase

import (
	"context"

	"github.com/quoteviral/quoteviral/internal/dto"
	"github.com/quoteviral/quoteviral/internal/entity"
)

type (
	// Limiter gates requests per (client, action) in fixed windows.
	// A backing-store failure fails open and is logged distinctly.
	Limiter interface {
		Check(ctx context.Context, clientID, action string) entity.Decision
	}

	// GenerationUseCase renders quote images, single and batch.
	GenerationUseCase interface {
		Generate(ctx context.Context, caller dto.Caller, params dto.GenerateParams) (*dto.GenerateResult, error)
		GenerateBatch(ctx context.Context, caller dto.Caller, params dto.BatchParams) (*dto.BatchResult, error)
	}

	// UploadUseCase preprocesses and stores uploaded base images.
	UploadUseCase interface {
		Upload(ctx context.Context, caller dto.Caller, params dto.UploadParams) (*dto.UploadResult, error)
	}

	// ServingUseCase serves stored assets optimized for the client.
	ServingUseCase interface {
		Serve(ctx context.Context, path string, client dto.ClientCapabilities, ifNoneMatch string) (*dto.ServeResult, error)
		Templates(ctx context.Context, category, language string) ([]entity.Template, error)
	}
)
