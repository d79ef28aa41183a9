package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-user-management/internal/interface/middleware"
)

// MetricsModule exposes the registry at /metrics. Scrapers on private
// networks skip the per-IP limit.
type MetricsModule struct {
	Registry *prometheus.Registry
	Redis    *redis.Client
}

func NewMetricsModule(reg *prometheus.Registry, rdb *redis.Client) *MetricsModule {
	return &MetricsModule{Registry: reg, Redis: rdb}
}

func (m *MetricsModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/metrics", rl, gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
}
