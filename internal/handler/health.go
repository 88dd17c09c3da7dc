package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether the two backing stores are reachable. The dashboard
// cache being down degrades the service but does not make it unusable, so
// Redis failures report 503 with the database status still visible.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus != "up" || cacheStatus != "up" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"service":  "cmms-backend",
			"ok":       status == http.StatusOK,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
