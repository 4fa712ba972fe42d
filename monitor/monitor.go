package monitor

import (
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// RegisterMonitorPage exposes a small liveness page with process uptime.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "ok",
			"started_at": startedAt.UTC().Format(time.RFC3339),
			"uptime":     time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
