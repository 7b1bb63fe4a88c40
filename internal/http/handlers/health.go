package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /api/
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Daily Feels API is running"})
}
