package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger reports whether a backing connection is alive.
type Pinger interface {
	Health(ctx context.Context) error
}

// HealthHandler reports liveness plus store and cache reachability.
type HealthHandler struct {
	store  Pinger
	cache  Pinger
	logger *zap.Logger
}

func NewHealthHandler(store, cache Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Health godoc
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	store := "up"
	cache := "up"

	if err := h.store.Health(ctx); err != nil {
		h.logger.Warn("Store health check failed", zap.Error(err))
		status = "degraded"
		store = "down"
	}
	if err := h.cache.Health(ctx); err != nil {
		h.logger.Warn("Cache health check failed", zap.Error(err))
		status = "degraded"
		cache = "down"
	}

	return c.JSON(fiber.Map{
		"status": status,
		"store":  store,
		"cache":  cache,
		"time":   time.Now(),
	})
}
