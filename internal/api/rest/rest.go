package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, metricsHandler http.Handler) {
	// Health check and metrics endpoints (no version prefix)
	router.GET("/health", handler.HealthCheck)
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/statistics", handler.GetStatistics)
		v1.GET("/units/:id/timeline", handler.GetUnitTimeline)
	}
}
