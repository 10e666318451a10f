package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Service liveness probe
// @Description Returns a simple payload proving the service is up.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
