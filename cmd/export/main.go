package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/config"
	"github.com/oksasatya/go-ddd-user-management/internal/container"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/gcs"
	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

// export uploads an NDJSON snapshot of every user to GCS_BUCKET.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-export", cfg.Env)
	if cfg.GCSBucket == "" {
		logger.Fatal("GCS_BUCKET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to build container")
	}
	defer c.Close()

	client, err := gcs.NewClient(ctx, cfg.GCSCredentialsJSONPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to init GCS client")
	}
	defer func() { _ = client.Close() }()

	exporter := gcs.NewExporter(c.UseCases.List, gcs.NewBucket(client, cfg.GCSBucket), cfg.ExportPrefix)
	loc, n, err := exporter.Export(ctx, time.Now())
	if err != nil {
		logger.WithError(err).WithField("exported", n).Fatal("export failed")
	}
	logger.WithFields(logrus.Fields{"object": loc, "users": n}).Info("export finished")
}
