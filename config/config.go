package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP       HTTP
		Log        Log
		PG         PG
		Redis      Redis
		S3         S3
		Render     Render
		Generation Generation
		Swagger    Swagger
	}

	HTTP struct {
		Port             string `env:"HTTP_PORT,required"`
		UsePreforkMode   bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		CORSAllowOrigins string `env:"HTTP_CORS_ALLOW_ORIGINS" envDefault:"*"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required"`
	}

	PG struct {
		PoolMax int    `env:"PG_POOL_MAX,required"`
		URL     string `env:"PG_URL,required"`
	}

	Redis struct {
		URL string `env:"REDIS_URL,required"`
	}

	S3 struct {
		Endpoint       string        `env:"S3_ENDPOINT,required"`
		AccessKey      string        `env:"S3_ACCESS_KEY,required"`
		SecretKey      string        `env:"S3_SECRET_KEY,required"`
		Bucket         string        `env:"S3_BUCKET,required"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	Render struct {
		CanvasWidth  int `env:"RENDER_CANVAS_WIDTH" envDefault:"1080"`
		CanvasHeight int `env:"RENDER_CANVAS_HEIGHT" envDefault:"1080"`
	}

	Generation struct {
		CacheTTL         time.Duration `env:"GENERATION_CACHE_TTL" envDefault:"24h"`
		CPUTimeout       time.Duration `env:"GENERATION_CPU_TIMEOUT" envDefault:"30s"` // decode, enhance and overlay of one image
		BatchConcurrency int           `env:"GENERATION_BATCH_CONCURRENCY" envDefault:"4"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
