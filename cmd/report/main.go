package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/handoverhq/tenancy-stats/internal/adapter"
	"github.com/handoverhq/tenancy-stats/internal/api/shared/dto"
	"github.com/handoverhq/tenancy-stats/internal/config"
	"github.com/handoverhq/tenancy-stats/internal/export"
	"github.com/handoverhq/tenancy-stats/internal/logger"
	"github.com/handoverhq/tenancy-stats/internal/stats"
	"github.com/handoverhq/tenancy-stats/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	year       = flag.Int("year", 0, "Report year; outside 2000-2100 the current year is used")
	outPath    = flag.String("out", "", "Output file; stdout when empty")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReportConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "report",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if err := run(ctx, cfg); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("component", "report"))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ReportConfig) error {
	loc, err := cfg.Report.Location()
	if err != nil {
		return err
	}

	db, err := store.Open(ctx, store.OpenConfig{
		DSN:            cfg.Database.DSN(),
		ConnectTimeout: cfg.Database.ConnectTimeout,
		Debug:          cfg.Debug,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		return fmt.Errorf("failed to configure connection pool: %w", err)
	}

	clock := adapter.NewClock()
	started := clock.Now()
	now := started.In(loc)
	reportYear := stats.NormalizeYear(*year, now)

	snapshot, err := store.NewPGStore(db).LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	engine := stats.NewEngine(stats.Options{
		Location:     loc,
		Workers:      cfg.Report.Workers,
		TopRoomTypes: cfg.Report.TopRoomTypes,
	})
	report, err := engine.Build(ctx, *snapshot, reportYear)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	response := dto.StatisticsResponse{GeneratedAt: now, Report: *report}
	writer := export.NewWriter(adapter.NewFileSystem(), adapter.NewJSON())
	if *outPath == "" {
		err = writer.Write(os.Stdout, response)
	} else {
		err = writer.WriteFile(*outPath, response)
	}
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Report written",
		zap.Int("year", reportYear),
		zap.Int("protocols", len(snapshot.Protocols)),
		zap.String("out", *outPath),
		zap.Duration("duration", clock.Since(started)),
	)
	return nil
}
