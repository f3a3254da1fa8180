package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/handoverhq/tenancy-stats/internal/domain"
)

// GetStatisticsQueryParams holds query parameters for GET /statistics
type GetStatisticsQueryParams struct {
	// Year selects the report year; out-of-range values fall back to the current year
	Year *int `form:"year"`
}

// ParseGetStatisticsQuery parses query parameters for GET /statistics
func ParseGetStatisticsQuery(c *gin.Context) (*GetStatisticsQueryParams, error) {
	var params GetStatisticsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, fmt.Errorf("%w: year must be a number: %w", domain.ErrInvalidYear, err)
	}
	return &params, nil
}

// parseUnitID parses the :id path parameter
func parseUnitID(c *gin.Context) (uint64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid unit id %q", raw)
	}
	return id, nil
}
