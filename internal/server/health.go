package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/konoha/internal/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startTime anchors the uptime figure in the health body.
var startTime = time.Now()

// handleHealth reports process liveness with runtime figures.
func handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		c.JSON(http.StatusOK, gin.H{
			"status": "running",
			"system": gin.H{
				"goroutines":       runtime.NumGoroutine(),
				"heap_alloc_bytes": mem.HeapAlloc,
				"sys_bytes":        mem.Sys,
				"gc_cycles":        mem.NumGC,
				"uptime_seconds":   int64(time.Since(startTime).Seconds()),
			},
		})
	}
}

// handleHealthDB pings the store. The body stays generic either way;
// the driver error goes to the log only.
func handleHealthDB(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context(), gormDB); err != nil {
			loggerFrom(c).Error("database ping failed",
				zap.String("request_id", requestIDFrom(c)),
				zap.Error(err),
			)
			c.JSON(http.StatusOK, gin.H{
				"status":   "unhealthy",
				"database": "unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	}
}
