package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/pkg/response"
)

// Checker is a dependency the service needs in order to serve traffic.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type HealthHandler struct {
	checkers []Checker
	logger   *logrus.Logger
	timeout  time.Duration
}

func NewHealthHandler(logger *logrus.Logger, checkers ...Checker) *HealthHandler {
	return &HealthHandler{
		checkers: lo.Filter(checkers, func(c Checker, _ int) bool { return c != nil }),
		logger:   logger,
		timeout:  2 * time.Second,
	}
}

// Live godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} response.APIResponse[map[string]string]
// @Router /healthz [get]
func (h *HealthHandler) Live(c *gin.Context) {
	response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "alive", nil)
}

// Ready godoc
// @Summary Readiness probe, checks every backing service
// @Tags health
// @Produce json
// @Success 200 {object} response.APIResponse[map[string]string]
// @Failure 503 {object} response.APIResponse[any]
// @Router /readyz [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := make(map[string]string, len(h.checkers))
	ready := true
	for _, chk := range h.checkers {
		if err := chk.Check(ctx); err != nil {
			ready = false
			status[chk.Name()] = err.Error()
			if h.logger != nil {
				h.logger.WithError(err).WithField("dependency", chk.Name()).Warn("readiness check failed")
			}
			continue
		}
		status[chk.Name()] = "ok"
	}

	if !ready {
		response.Error[any](c, http.StatusServiceUnavailable, "not ready", status)
		return
	}
	response.Success(c, http.StatusOK, status, "ready", nil)
}
