package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const dashboardCacheKey = "dashboard:stats"

// DashboardHandler serves the landing-page summary through a short-lived
// Redis cache; the counters tolerate a few seconds of staleness. A TTL of
// zero disables the cache entirely.
type DashboardHandler struct {
	svc      service.DashboardService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewDashboardHandler(svc service.DashboardService, rdb *redis.Client, cacheTTLSeconds int) *DashboardHandler {
	return &DashboardHandler{
		svc:      svc,
		rdb:      rdb,
		cacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}

func (h *DashboardHandler) cacheEnabled() bool {
	return h.rdb != nil && h.cacheTTL > 0
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cacheEnabled() {
		if cached, err := h.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var stats dto.DashboardStats
			if jsonErr := json.Unmarshal(cached, &stats); jsonErr == nil {
				c.JSON(http.StatusOK, stats)
				return
			}
		}
	}

	stats, err := h.svc.Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache — best effort, ignore errors
	if h.cacheEnabled() {
		if b, jsonErr := json.Marshal(stats); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), dashboardCacheKey, b, h.cacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, stats)
}
