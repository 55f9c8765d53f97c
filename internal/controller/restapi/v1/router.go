package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quoteviral/quoteviral/internal/infrastructure/monitor"
	"github.com/quoteviral/quoteviral/internal/usecase"
	"github.com/quoteviral/quoteviral/pkg/logger"
)

func NewQuoteRoutes(
	app *fiber.App,
	apiGroup fiber.Router,
	gen usecase.GenerationUseCase,
	uploads usecase.UploadUseCase,
	serving usecase.ServingUseCase,
	health *monitor.Health,
	l logger.Interface,
) {
	r := &V1{gen: gen, uploads: uploads, serving: serving, health: health, logger: l}

	{
		// API
		apiGroup.Post("/upload", r.uploadImage)
		apiGroup.Post("/generate", r.generateQuote)
		apiGroup.Post("/batch", r.generateBatch)
		apiGroup.Get("/quotes", r.getQuotes)
		apiGroup.Get("/templates", r.getTemplates)
		apiGroup.Get("/fonts", r.getFonts)
		apiGroup.Get("/categories", r.getCategories)
		apiGroup.Get("/languages", r.getLanguages)
		apiGroup.Get("/formats", r.getFormats)
		apiGroup.Get("/health", r.getHealth)

		// optimized asset delivery
		app.Get("/serve/*", r.serveImage)
	}
}
