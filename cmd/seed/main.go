package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/config"
	"github.com/oksasatya/go-ddd-user-management/internal/application"
	"github.com/oksasatya/go-ddd-user-management/internal/container"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

var demoUsers = []application.CreateUserRequest{
	{Name: "Test User", Email: "test@example.com", Password: "password123"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to build container")
	}
	defer c.Close()

	for _, req := range demoUsers {
		out, err := c.UseCases.Create.Execute(ctx, req)
		switch {
		case errors.Is(err, entity.ErrConflict):
			logger.WithField("email", req.Email).Info("user already exists, skipping")
		case err != nil:
			logger.WithError(err).WithField("email", req.Email).Fatal("failed to seed user")
		default:
			logger.WithFields(logrus.Fields{"id": out.ID, "email": out.Email, "name": out.Name}).Info("seeded user")
		}
	}
}
