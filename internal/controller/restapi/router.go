package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/quoteviral/quoteviral/config"
	v1 "github.com/quoteviral/quoteviral/internal/controller/restapi/v1"
	"github.com/quoteviral/quoteviral/internal/infrastructure/monitor"
	"github.com/quoteviral/quoteviral/internal/usecase"
	"github.com/quoteviral/quoteviral/pkg/logger"
)

// @title QuoteViral
// @version 1.0.0
// @host localhost:8080
// @BasePath /api
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	gen usecase.GenerationUseCase,
	uploads usecase.UploadUseCase,
	serving usecase.ServingUseCase,
	health *monitor.Health,
	l logger.Interface,
) {
	// CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type, Accept, If-None-Match, DPR, Save-Data",
	}))

	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiGroup := app.Group("/api")
	{
		v1.NewQuoteRoutes(app, apiGroup, gen, uploads, serving, health, l)
	}
}
