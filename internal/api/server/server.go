package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/handoverhq/tenancy-stats/internal/adapter"
	"github.com/handoverhq/tenancy-stats/internal/api/middleware"
	"github.com/handoverhq/tenancy-stats/internal/api/rest"
	"github.com/handoverhq/tenancy-stats/internal/api/shared/executor"
	"github.com/handoverhq/tenancy-stats/internal/logger"
	"github.com/handoverhq/tenancy-stats/internal/metrics"
	"github.com/handoverhq/tenancy-stats/internal/stats"
	"github.com/handoverhq/tenancy-stats/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	engine     *stats.Engine
	clock      adapter.Clock
	metrics    *metrics.Metrics
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, store store.Store, engine *stats.Engine, clock adapter.Clock, metrics *metrics.Metrics) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		engine:  engine,
		clock:   clock,
		metrics: metrics,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())
	if s.metrics != nil {
		router.Use(middleware.Metrics(s.metrics))
	}

	// Create shared executor
	exec := executor.NewExecutor(s.store, s.engine, s.clock, s.metrics)

	var metricsHandler http.Handler
	if s.metrics != nil {
		metricsHandler = s.metrics.Handler()
	}
	rest.SetupRoutes(router, rest.NewHandler(exec), metricsHandler)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.InfoCtx(ctx, "Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.InfoCtx(ctx, "Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
