package dto

import (
	"time"

	"github.com/handoverhq/tenancy-stats/internal/stats"
)

// StatisticsResponse represents the statistics report of one year
type StatisticsResponse struct {
	GeneratedAt time.Time `json:"generated_at"`
	stats.Report
}

// HealthResponse represents the health status of the service
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}
