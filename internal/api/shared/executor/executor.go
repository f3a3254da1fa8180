package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/handoverhq/tenancy-stats/internal/adapter"
	"github.com/handoverhq/tenancy-stats/internal/api/shared/dto"
	apierrors "github.com/handoverhq/tenancy-stats/internal/api/shared/errors"
	"github.com/handoverhq/tenancy-stats/internal/logger"
	"github.com/handoverhq/tenancy-stats/internal/metrics"
	"github.com/handoverhq/tenancy-stats/internal/stats"
	"github.com/handoverhq/tenancy-stats/internal/store"
)

// ServiceName identifies the service in health responses
const ServiceName = "tenancy-stats-api"

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetStatistics builds the statistics report for year; nil selects the current year
	GetStatistics(ctx context.Context, year *int) (*dto.StatisticsResponse, error)

	// GetUnitTimeline reconstructs the occupancy timeline of a unit; nil when the unit does not exist
	GetUnitTimeline(ctx context.Context, unitID uint64) (*dto.UnitTimelineResponse, error)

	// CheckHealth reports the service and database status
	CheckHealth(ctx context.Context) (*dto.HealthResponse, error)
}

type executor struct {
	store   store.Store
	engine  *stats.Engine
	clock   adapter.Clock
	metrics *metrics.Metrics
}

// NewExecutor creates a new executor; metrics may be nil
func NewExecutor(store store.Store, engine *stats.Engine, clock adapter.Clock, metrics *metrics.Metrics) Executor {
	return &executor{store: store, engine: engine, clock: clock, metrics: metrics}
}

func (e *executor) GetStatistics(ctx context.Context, year *int) (*dto.StatisticsResponse, error) {
	start := e.clock.Now()
	now := start.In(e.engine.Location())

	reportYear := now.Year()
	if year != nil {
		reportYear = stats.NormalizeYear(*year, now)
	}

	snapshot, err := e.store.LoadSnapshot(ctx)
	if err != nil {
		e.metrics.ReportFailed()
		logger.ErrorCtx(ctx, fmt.Errorf("failed to load snapshot: %w", err), zap.Int("year", reportYear))
		return nil, apierrors.NewDatabaseError("Failed to load protocols", err.Error())
	}

	report, err := e.engine.Build(ctx, *snapshot, reportYear)
	if err != nil {
		e.metrics.ReportFailed()
		return nil, apierrors.NewInternalError("Failed to build report", err.Error())
	}

	e.metrics.ObserveReport(e.clock.Since(start), len(snapshot.Protocols))

	return &dto.StatisticsResponse{
		GeneratedAt: now,
		Report:      *report,
	}, nil
}

func (e *executor) GetUnitTimeline(ctx context.Context, unitID uint64) (*dto.UnitTimelineResponse, error) {
	unit, err := e.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get unit", err.Error())
	}
	if unit == nil {
		return nil, nil
	}

	protocols, err := e.store.ListProtocolsByUnit(ctx, unitID)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list protocols", err.Error())
	}

	timeline := e.engine.Timeline(ctx, unitID, protocols)
	return dto.MapTimelineToDTO(unit, timeline), nil
}

func (e *executor) CheckHealth(ctx context.Context) (*dto.HealthResponse, error) {
	if err := e.store.Ping(ctx); err != nil {
		logger.WarnCtx(ctx, "Database health check failed", zap.Error(err))
		return nil, apierrors.NewServiceUnavailableError("Database unavailable", err.Error())
	}
	return &dto.HealthResponse{
		Status:   "ok",
		Service:  ServiceName,
		Database: "ok",
	}, nil
}
