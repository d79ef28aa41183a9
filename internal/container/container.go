package container

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/config"
	"github.com/oksasatya/go-ddd-user-management/internal/application"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
	esinfra "github.com/oksasatya/go-ddd-user-management/internal/infrastructure/elasticsearch"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-ddd-user-management/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/rabbitmq"
	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

// Container holds the components built once at startup and shared by the
// router and the CLIs. Optional pieces stay nil when disabled.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Pool     *pgxpool.Pool  // postgres storage only
	Redis    *redis.Client  // REDIS_ADDR set
	Events   *rabbitmq.UserEventPublisher
	Index    *esinfra.UserIndex
	Metrics  *prometheus.Registry
	Repo     repository.UserRepository
	UseCases *application.UserUseCases

	closers []func()
}

// New connects the configured backends and wires the use cases. On error
// everything opened so far is closed again.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}
	if err := c.build(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) build(ctx context.Context) error {
	cfg := c.Config

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		c.Pool = pool
		c.closers = append(c.closers, pool.Close)
		c.Repo = pginfra.NewUserRepository(pool)
	case config.StorageMemory:
		c.Logger.Warn("using in-memory storage, data is lost on restart")
		c.Repo = memory.NewUserRepository()
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.RedisAddr != "" {
		c.Redis = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		c.closers = append(c.closers, func() { _ = c.Redis.Close() })
	}

	var pubs application.Publishers
	var searcher application.UserSearcher

	if cfg.EventsEnabled {
		pub, err := rabbitmq.NewUserEventPublisher(cfg.RabbitMQURL, cfg.RabbitMQUserEventsQueue)
		if err != nil {
			return err
		}
		c.Events = pub
		c.closers = append(c.closers, pub.Close)
		pubs = append(pubs, pub)
	}

	if cfg.SearchEnabled {
		es, err := esinfra.NewClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			return fmt.Errorf("elasticsearch client: %w", err)
		}
		c.Index = esinfra.NewUserIndex(es, cfg.ESUsersIndex)
		pubs = append(pubs, c.Index)
		searcher = c.Index
	}

	c.Metrics = prometheus.NewRegistry()
	c.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c.UseCases = application.NewUserUseCases(c.Repo, pubs, searcher, c.Logger)
	c.Logger.WithFields(logrus.Fields{
		"storage": cfg.StorageDriver,
		"redis":   c.Redis != nil,
		"events":  c.Events != nil,
		"search":  c.Index != nil,
	}).Info("container ready")
	return nil
}

// Close releases connections in reverse order of opening.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
