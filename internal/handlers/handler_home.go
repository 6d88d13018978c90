package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Liveness check
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// registerHealthRoutes registers the unauthenticated liveness check.
func registerHealthRoutes(r *gin.Engine) {
	r.GET("/health", getHealth)
}
