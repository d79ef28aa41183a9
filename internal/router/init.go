package router

import (
	"time"

	"github.com/oksasatya/go-ddd-user-management/internal/container"
	pginfra "github.com/oksasatya/go-ddd-user-management/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-ddd-user-management/internal/interface/http"
	"github.com/oksasatya/go-ddd-user-management/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-user-management/internal/router/modules"
	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

func readinessCheckers(c *container.Container) []handlers.Checker {
	var out []handlers.Checker
	if c.Pool != nil {
		out = append(out, pginfra.NewChecker(c.Pool))
	}
	if c.Redis != nil {
		out = append(out, helpers.NewRedisChecker(c.Redis))
	}
	return out
}

// InitModules builds every HTTP module from the container and adds it to the
// registry. Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	cfg := c.Config

	r.Use(middleware.RateLimit(c.Redis, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIP(), nil))

	r.AddRoot(modules.NewHealthModule(handlers.NewHealthHandler(c.Logger, readinessCheckers(c)...)))
	if cfg.MetricsEnabled {
		r.AddRoot(modules.NewMetricsModule(c.Metrics, c.Redis))
	}
	if cfg.SwaggerEnabled {
		r.AddRoot(modules.NewDocsModule())
	}

	r.Add(modules.NewUserModule(handlers.NewUserHandler(c.UseCases, c.Logger)))
}
