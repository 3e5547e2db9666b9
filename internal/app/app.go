package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tareksherif64/Family-Photo-Storage/config"
	"github.com/tareksherif64/Family-Photo-Storage/internal/controller/restapi"
	"github.com/tareksherif64/Family-Photo-Storage/internal/infrastructure"
	infrakafka "github.com/tareksherif64/Family-Photo-Storage/internal/infrastructure/kafka"
	"github.com/tareksherif64/Family-Photo-Storage/internal/repo/persistent"
	"github.com/tareksherif64/Family-Photo-Storage/internal/usecase/family"
	"github.com/tareksherif64/Family-Photo-Storage/internal/usecase/favorites"
	"github.com/tareksherif64/Family-Photo-Storage/internal/usecase/gallery"
	"github.com/tareksherif64/Family-Photo-Storage/internal/usecase/upload"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/httpserver"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/kafka/producer"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/postgres"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/s3client"
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

	blobRepo := persistent.NewPhotoBlobRepo(s3c, cfg.S3.Bucket, cfg.S3.URLTTL)
	photoRepo := persistent.NewPhotoMetadataRepo(pg)
	userRepo := persistent.NewUserRepo(pg)
	familyRepo := persistent.NewFamilyRepo(pg)

	// Activity Events
	var events infrastructure.ActivityPublisher = infrastructure.NopPublisher{}
	if cfg.Kafka.Enabled {
		kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - producer.New: %w", err))
		}
		events = infrakafka.NewActivityPublisher(kafkaProducer, cfg.Kafka.Topic)
	}

	// Use-Case

	uploadUseCase := upload.New(
		blobRepo,
		photoRepo,
		userRepo,
		events,
		l,
		cfg.Upload.Workers,
		cfg.Upload.MaxFileSize,
	)

	favoritesUseCase := favorites.New(userRepo, l)

	galleryUseCase := gallery.New(
		userRepo,
		photoRepo,
		blobRepo,
		favoritesUseCase,
		l,
	)

	familyUseCase := family.New(familyRepo, userRepo, pg, l)

	// HTTP Server
	httpServer := httpserver.New(
		l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.BodyLimit(int(cfg.Upload.MaxFileSize)*cfg.Upload.MaxBatchFiles),
	)
	restapi.NewRouter(httpServer.App, cfg, uploadUseCase, galleryUseCase, favoritesUseCase, familyUseCase, l)

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

	err = events.Close()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - events.Close: %w", err))
	}
}
