package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		PG      PG
		S3      S3
		Kafka   Kafka
		Upload  Upload
		Swagger Swagger
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT,required"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required"`
	}

	PG struct {
		PoolMax int    `env:"PG_POOL_MAX,required"`
		URL     string `env:"PG_URL,required"`
	}

	S3 struct {
		Endpoint       string        `env:"S3_ENDPOINT,required"`
		AccessKey      string        `env:"S3_ACCESS_KEY,required"`
		SecretKey      string        `env:"S3_SECRET_KEY,required"`
		Bucket         string        `env:"S3_BUCKET,required"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
		URLTTL         time.Duration `env:"S3_URL_TTL" envDefault:"1h"` // presigned download URL lifetime
	}

	Kafka struct {
		Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
		Brokers []string `env:"KAFKA_BROKERS" envDefault:""`
		Topic   string   `env:"KAFKA_TOPIC" envDefault:"family-photos.activity"`
	}

	Upload struct {
		Workers     int   `env:"UPLOAD_WORKERS" envDefault:"4"`
		MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" envDefault:"10485760"` // bytes
		// MaxBatchFiles sizes the request body limit: the server must
		// accept a full batch of max-size files in one multipart POST.
		MaxBatchFiles int `env:"UPLOAD_MAX_BATCH_FILES" envDefault:"20"`
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
