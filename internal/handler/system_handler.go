package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/repository"
	"github.com/stemsi/folio-backend/internal/response"
)

const readyTimeout = 3 * time.Second

// SystemHandler serves liveness, readiness and Prometheus metrics.
type SystemHandler struct {
	store     repository.Pinger
	rdb       *redis.Client
	gatherer  prometheus.Gatherer
	startTime time.Time
	log       zerolog.Logger
}

// NewSystemHandler builds the handler. rdb may be nil when Redis is not configured.
func NewSystemHandler(store repository.Pinger, rdb *redis.Client, gatherer prometheus.Gatherer, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		store:     store,
		rdb:       rdb,
		gatherer:  gatherer,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ready godoc
// GET /ready
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := gin.H{"store": "ok"}
	ready := true

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("Store not reachable")
		checks["store"] = "unreachable"
		ready = false
	}

	if h.rdb != nil {
		checks["redis"] = "ok"
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			// Redis only backs the cache and limiter; its loss degrades, not fails.
			h.log.Warn().Err(err).Msg("Redis not reachable")
			checks["redis"] = "degraded"
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	response.Success(c, status, gin.H{"ready": ready, "checks": checks})
}

// Metrics godoc
// GET /metrics
func (h *SystemHandler) Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}
