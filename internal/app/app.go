package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quoteviral/quoteviral/config"
	"github.com/quoteviral/quoteviral/internal/controller/restapi"
	"github.com/quoteviral/quoteviral/internal/infrastructure/monitor"
	"github.com/quoteviral/quoteviral/internal/infrastructure/render"
	"github.com/quoteviral/quoteviral/internal/infrastructure/variants"
	"github.com/quoteviral/quoteviral/internal/repo/persistent"
	"github.com/quoteviral/quoteviral/internal/usecase/generation"
	"github.com/quoteviral/quoteviral/internal/usecase/ratelimit"
	"github.com/quoteviral/quoteviral/internal/usecase/serving"
	"github.com/quoteviral/quoteviral/internal/usecase/upload"
	"github.com/quoteviral/quoteviral/pkg/httpserver"
	"github.com/quoteviral/quoteviral/pkg/logger"
	"github.com/quoteviral/quoteviral/pkg/postgres"
	"github.com/quoteviral/quoteviral/pkg/redisclient"
	"github.com/quoteviral/quoteviral/pkg/s3client"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	// redis
	rc, err := redisclient.New(ctx, cfg.Redis.URL)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - redisclient.New: %w", err))
	}
	defer rc.Close()

	blobRepo := persistent.NewBlobRepo(s3c, cfg.S3.Bucket)
	cacheRepo := persistent.NewCacheRepo(rc)
	limitRepo := persistent.NewLimitRepo(rc)
	uploadMetadataRepo := persistent.NewUploadMetadataRepo(pg)
	usageEventRepo := persistent.NewUsageEventRepo(pg)

	// Infrastructure

	renderer, err := render.NewEngine(cfg.Render.CanvasWidth, cfg.Render.CanvasHeight)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - render.NewEngine: %w", err))
	}

	variantGenerator := variants.New()
	tracker := monitor.NewTracker(usageEventRepo, l)

	health := monitor.NewHealth(l,
		monitor.Probe{Name: "postgres", Check: func(ctx context.Context) error {
			return pg.Pool.Ping(ctx)
		}},
		monitor.Probe{Name: "redis", Check: func(ctx context.Context) error {
			return rc.Client.Ping(ctx).Err()
		}},
		monitor.Probe{Name: "storage", Check: func(ctx context.Context) error {
			_, err := blobRepo.Head(ctx, "health-check.txt")
			if errors.Is(err, errs.ErrRecordNotFound) {
				return nil
			}
			return err
		}},
	)

	// Use-Case

	limiter := ratelimit.New(limitRepo, l)

	generationUseCase := generation.New(
		blobRepo,
		cacheRepo,
		limiter,
		renderer,
		variantGenerator,
		tracker,
		l,
		generation.CacheTTL(cfg.Generation.CacheTTL),
		generation.CPUTimeout(cfg.Generation.CPUTimeout),
		generation.BatchConcurrency(cfg.Generation.BatchConcurrency),
	)

	uploadUseCase := upload.New(blobRepo, uploadMetadataRepo, pg, limiter, tracker, l)

	servingUseCase := serving.New(blobRepo, l)

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))
	restapi.NewRouter(httpServer.App, cfg, generationUseCase, uploadUseCase, servingUseCase, health, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
