package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/handoverhq/tenancy-stats/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetStatistics returns the statistics report of a year
	// GET /api/v1/statistics?year=<year>
	GetStatistics(c *gin.Context)

	// GetUnitTimeline returns the reconstructed occupancy timeline of a unit
	// GET /api/v1/units/:id/timeline
	GetUnitTimeline(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// GetStatistics returns the statistics report of a year
func (h *handler) GetStatistics(c *gin.Context) {
	queryParams, err := ParseGetStatisticsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetStatistics(c.Request.Context(), queryParams.Year)
	if err != nil {
		respondExecutorError(c, err, "Failed to build statistics")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetUnitTimeline returns the reconstructed occupancy timeline of a unit
func (h *handler) GetUnitTimeline(c *gin.Context) {
	unitID, err := parseUnitID(c)
	if err != nil {
		respondBadRequest(c, "Invalid unit ID", err.Error())
		return
	}

	response, err := h.executor.GetUnitTimeline(c.Request.Context(), unitID)
	if err != nil {
		respondExecutorError(c, err, "Failed to get unit timeline", zap.Uint64("unit_id", unitID))
		return
	}

	if response == nil {
		respondNotFound(c, "Unit not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	response, err := h.executor.CheckHealth(c.Request.Context())
	if err != nil {
		respondExecutorError(c, err, "Health check failed")
		return
	}

	c.JSON(http.StatusOK, response)
}
