// Package api exposes the HTTP surface: scan intake (sync and SSE),
// status and report queries, scan cancellation, the WebSocket progress
// channel, and operational endpoints.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/database"
	"github.com/probeworks/diligent/pkg/events"
	"github.com/probeworks/diligent/pkg/queue"
	"github.com/probeworks/diligent/pkg/services"
)

// Server wires the service layer onto HTTP handlers.
type Server struct {
	cfg           *config.ServerConfig
	dbClient      *database.Client
	scanService   *services.ScanService
	reportService *services.ReportService
	workerPool    *queue.WorkerPool
	connManager   *events.ConnectionManager
	logger        *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server. The worker pool and connection
// manager are optional; the corresponding endpoints degrade when absent.
func NewServer(
	cfg *config.ServerConfig,
	dbClient *database.Client,
	scanService *services.ScanService,
	reportService *services.ReportService,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:           cfg,
		dbClient:      dbClient,
		scanService:   scanService,
		reportService: reportService,
		workerPool:    workerPool,
		connManager:   connManager,
		logger:        logger,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.logger))
	router.Use(securityHeaders())
	if len(s.cfg.AllowedOrigins) > 0 {
		router.Use(corsMiddleware(s.cfg.AllowedOrigins))
	}

	router.GET("/healthz", s.healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws", s.wsHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/scans", s.createScanHandler)
		v1.GET("/scans", s.listScansHandler)
		v1.GET("/scans/:id", s.getScanHandler)
		v1.GET("/scans/:id/stages", s.scanStagesHandler)
		v1.POST("/scans/:id/cancel", s.cancelScanHandler)
		v1.GET("/scans/:id/report", s.scanReportHandler)
		v1.GET("/scans/:id/evidence", s.scanEvidenceHandler)
		v1.GET("/reports/:id", s.getReportHandler)
	}

	return router
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.Router(),
	}
	s.logger.Info("API server listening", "addr", s.cfg.ListenAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	drainCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(drainCtx)
}
