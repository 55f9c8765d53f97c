package v1

import (
	"github.com/quoteviral/quoteviral/internal/infrastructure/monitor"
	"github.com/quoteviral/quoteviral/internal/usecase"
	"github.com/quoteviral/quoteviral/pkg/logger"
)

type V1 struct {
	gen     usecase.GenerationUseCase
	uploads usecase.UploadUseCase
	serving usecase.ServingUseCase
	health  *monitor.Health
	logger  logger.Interface
}
