package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is the GET / liveness message.
//
// @Summary  Liveness message
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Job Aggregator Backend is running"})
}

// Hello is the GET /api/hello connectivity check.
//
// @Summary  Connectivity check
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /api/hello [get]
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}
