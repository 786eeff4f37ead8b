// Diligent server: scan intake API, queue workers, and the pipeline
// that drives evidence collection and report synthesis.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/probeworks/diligent/pkg/analyzer"
	"github.com/probeworks/diligent/pkg/api"
	"github.com/probeworks/diligent/pkg/collector"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/database"
	"github.com/probeworks/diligent/pkg/events"
	"github.com/probeworks/diligent/pkg/evidence"
	"github.com/probeworks/diligent/pkg/pipeline"
	"github.com/probeworks/diligent/pkg/queue"
	"github.com/probeworks/diligent/pkg/resilience"
	"github.com/probeworks/diligent/pkg/services"
	"github.com/probeworks/diligent/pkg/synthesis"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildCollectors assembles the built-in collector set. Search and deep
// research need an external API and are only registered when their base
// URL is configured.
func buildCollectors() []collector.Collector {
	collectors := []collector.Collector{
		collector.NewShallowCrawler(),
		collector.NewDeepCrawler(),
		collector.NewTechDetector(nil),
		collector.NewSecurityHeadersCollector(nil),
		collector.NewTLSScanner(),
	}

	if base := os.Getenv("SEARCH_API_URL"); base != "" {
		provider := collector.NewHTTPSearchProvider(base, getEnv("SEARCH_API_KEY_ENV", "SEARCH_API_KEY"), nil)
		collectors = append(collectors, collector.NewSearchCollector(provider))
	} else {
		slog.Warn("SEARCH_API_URL not set, search collector disabled")
	}

	if base := os.Getenv("RESEARCH_API_URL"); base != "" {
		service := collector.NewHTTPResearchService(base, getEnv("RESEARCH_API_KEY_ENV", "RESEARCH_API_KEY"), nil)
		collectors = append(collectors, collector.NewDeepResearchCollector(service))
	}

	return collectors
}

func buildAnalyzer(cfg *config.AnalyzerConfig) analyzer.Analyzer {
	if cfg != nil && cfg.Provider == "llm" {
		slog.Info("Using LLM analyzer", "base_url", cfg.BaseURL, "model", cfg.Model)
		return analyzer.NewLLM(cfg)
	}
	return analyzer.NewHeuristic()
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	podID := resolvePodID()
	logger := slog.Default()
	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting diligent", "pod_id", podID, "listen_addr", cfg.Server.ListenAddr)

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL, migrations applied")

	// Queue and service layer.
	queueService := queue.NewService(dbClient.Client, cfg.Queue)
	scanService := services.NewScanService(dbClient.Client, queueService)
	reportService := services.NewReportService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// Streaming infrastructure: persisted events fan out across pods via
	// NOTIFY; the listener holds a dedicated connection for LISTEN.
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 10*time.Second)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)

	// Collector registry and resilience layer.
	registry, err := collector.NewRegistry(cfg.Collectors, buildCollectors()...)
	if err != nil {
		slog.Error("Failed to build collector registry", "error", err)
		os.Exit(1)
	}
	breakers := resilience.NewBreakerSet(cfg.Resilience, nil)
	health := resilience.NewHealthMonitor(cfg.Resilience, breakers, prometheus.DefaultRegisterer)
	executor := resilience.NewExecutor(cfg.Resilience, registry, breakers, health,
		collector.NewHeuristicCollector(), nil, logger)

	// Synthesis.
	synthesizer := synthesis.NewSynthesizer(buildAnalyzer(cfg.Synthesis.Analyzer), cfg.Synthesis, logger)
	reportStore := synthesis.NewStore(dbClient.Client)
	evidenceStore := evidence.NewEntStore(dbClient.Client)

	// Pipeline handlers share one pod-local dispatcher.
	dispatcher := pipeline.NewDispatcher()
	workerPool := queue.NewWorkerPool(podID, dbClient, cfg.Queue, queueService)

	orchestrator := pipeline.NewOrchestrator(podID, cfg.Pipeline, cfg.Queue,
		dbClient.Client, scanService, queueService, evidenceStore, dispatcher,
		executor, publisher, eventService, workerPool, logger)
	collectorHandler := pipeline.NewCollectorHandler(scanService, executor,
		dispatcher, evidenceStore, publisher, logger)
	synthesizeHandler := pipeline.NewSynthesizeHandler(scanService, evidenceStore,
		synthesizer, reportStore, dispatcher, publisher, logger)

	workerPool.Register(config.QueueOrchestrate, orchestrator)
	for _, queueName := range []string{
		config.QueueWebScrape,
		config.QueueTechDetect,
		config.QueueSearch,
		config.QueueSecurity,
		config.QueueTLSScan,
		config.QueueVulnScan,
	} {
		workerPool.Register(queueName, collectorHandler)
	}
	workerPool.Register(config.QueueSynthesize, synthesizeHandler)

	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(cfg.Server, dbClient, scanService, reportService,
		workerPool, connManager, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()
	slog.Info("Diligent started", "pod_id", podID, "collectors", registry.Names())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Drain workers first so in-flight scans release or finish their jobs,
	// then stop accepting HTTP.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, unfinished jobs will be orphan-recovered")
	}

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}
