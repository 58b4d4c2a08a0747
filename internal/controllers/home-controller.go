package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// WelcomeMessage is the body of the root route
const WelcomeMessage = "Welcome to the best pizza"

// Index godoc
// @Summary Welcome
// @Description Static welcome string, usable as a liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func Index(ctx *gin.Context) {
	ctx.String(http.StatusOK, WelcomeMessage)
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-restaurants-api",
	})
}
