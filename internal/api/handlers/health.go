package handlers

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles the health check endpoint
//
//	@Summary		Health check
//	@Description	Check if the service is up and running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Router			/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Readiness reports 503 once shuttingDown is set so load balancers stop routing here
//
//	@Summary		Readiness check
//	@Description	Check if the service accepts traffic
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Ready"
//	@Failure		503	{object}	map[string]string	"Shutting down"
//	@Router			/ready [get]
func Readiness(shuttingDown *atomic.Bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if shuttingDown.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
