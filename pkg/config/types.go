package config

import "time"

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// ListenAddr is the HTTP bind address (":8080").
	ListenAddr string `yaml:"listen_addr"`

	// AllowedOrigins restricts WebSocket and CORS origins. Empty means same-origin only.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// ShutdownTimeout bounds HTTP server drain on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:      ":8080",
		ShutdownTimeout: 5 * time.Second,
	}
}

// QueueConfig contains queue and worker pool configuration.
type QueueConfig struct {
	// Workers is the per-queue worker count. Queues not listed use DefaultWorkers.
	Workers map[string]int `yaml:"workers"`

	// DefaultWorkers is the worker count for queues without an explicit entry.
	DefaultWorkers int `yaml:"default_workers"`

	// MaxConcurrentScans is the global limit of scans in progress across all
	// replicas. Enforced by a database COUNT check at claim time.
	MaxConcurrentScans int `yaml:"max_concurrent_scans"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes the poll interval: actual is
	// PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// VisibilityTimeout is how long a claimed job stays invisible before the
	// orphan scanner returns it to the queue. Long-running handlers extend it
	// via heartbeat.
	VisibilityTimeout time.Duration `yaml:"visibility_timeout"`

	// HeartbeatInterval is how often running handlers extend their visibility
	// deadline and the scan heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// MaxAttempts is the default delivery attempt cap before dead-lettering.
	MaxAttempts int `yaml:"max_attempts"`

	// RetryInitialDelay, RetryMaxDelay, and BackoffFactor shape the
	// re-enqueue backoff: delay = min(initial * factor^(attempt-1), max).
	RetryInitialDelay time.Duration `yaml:"retry_initial_delay"`
	RetryMaxDelay     time.Duration `yaml:"retry_max_delay"`
	BackoffFactor     float64       `yaml:"backoff_factor"`

	// GracefulShutdownTimeout bounds the wait for in-flight jobs on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanScanInterval is how often lapsed visibility deadlines and stale
	// scan heartbeats are scanned for.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// JobRetention is how long terminal job rows are kept before cleanup.
	JobRetention time.Duration `yaml:"job_retention"`
}

// WorkersFor returns the worker count for a queue, falling back to
// DefaultWorkers.
func (c *QueueConfig) WorkersFor(queueName string) int {
	if n, ok := c.Workers[queueName]; ok && n > 0 {
		return n
	}
	if c.DefaultWorkers > 0 {
		return c.DefaultWorkers
	}
	return 1
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Workers: map[string]int{
			QueueOrchestrate: 2,
			QueueWebScrape:   4,
			QueueSearch:      4,
			QueueTechDetect:  2,
			QueueSecurity:    2,
			QueueTLSScan:     2,
			QueueVulnScan:    2,
			QueueSynthesize:  1,
		},
		DefaultWorkers:          2,
		MaxConcurrentScans:      5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		VisibilityTimeout:       2 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		MaxAttempts:             3,
		RetryInitialDelay:       2 * time.Second,
		RetryMaxDelay:           30 * time.Second,
		BackoffFactor:           2,
		GracefulShutdownTimeout: 3 * time.Minute,
		OrphanScanInterval:      1 * time.Minute,
		JobRetention:            24 * time.Hour,
	}
}

// Canonical queue names, one per job kind.
const (
	QueueOrchestrate = "orchestrate"
	QueueSearch      = "search"
	QueueWebScrape   = "web-scrape"
	QueueTechDetect  = "tech-detect"
	QueueSecurity    = "security-scan"
	QueueTLSScan     = "tls-scan"
	QueueVulnScan    = "vuln-scan"
	QueueSynthesize  = "synthesize"
)

// ResilienceConfig tunes the per-collector retry, breaker, and fallback layer.
type ResilienceConfig struct {
	// MaxRetries is the retry attempt cap per collector invocation.
	MaxRetries int `yaml:"max_retries"`

	// RetryInitialDelay, RetryMaxDelay, and BackoffFactor shape the retry
	// backoff inside a single invocation.
	RetryInitialDelay time.Duration `yaml:"retry_initial_delay"`
	RetryMaxDelay     time.Duration `yaml:"retry_max_delay"`
	BackoffFactor     float64       `yaml:"backoff_factor"`

	// BreakerThreshold is the consecutive-failure count that opens a circuit.
	BreakerThreshold int `yaml:"breaker_threshold"`

	// BreakerWindow bounds how far apart the consecutive failures may be.
	BreakerWindow time.Duration `yaml:"breaker_window"`

	// BreakerCooldown is the initial open-state cooldown; a failure in
	// half-open doubles it, capped at BreakerMaxCooldown.
	BreakerCooldown    time.Duration `yaml:"breaker_cooldown"`
	BreakerMaxCooldown time.Duration `yaml:"breaker_max_cooldown"`

	// HealthDegradedBelow and HealthCriticalBelow are success-rate thresholds
	// for the health monitor's degraded/critical levels.
	HealthDegradedBelow float64 `yaml:"health_degraded_below"`
	HealthCriticalBelow float64 `yaml:"health_critical_below"`
}

// DefaultResilienceConfig returns the built-in resilience defaults.
func DefaultResilienceConfig() *ResilienceConfig {
	return &ResilienceConfig{
		MaxRetries:          3,
		RetryInitialDelay:   2 * time.Second,
		RetryMaxDelay:       30 * time.Second,
		BackoffFactor:       2,
		BreakerThreshold:    5,
		BreakerWindow:       2 * time.Minute,
		BreakerCooldown:     30 * time.Second,
		BreakerMaxCooldown:  8 * time.Minute,
		HealthDegradedBelow: 0.7,
		HealthCriticalBelow: 0.3,
	}
}

// PipelineConfig tunes the stage machine.
type PipelineConfig struct {
	// StageTimeout is the per-stage budget; collector timeouts are capped by it.
	StageTimeout time.Duration `yaml:"stage_timeout"`

	// ScanDeadline is the overall scan deadline.
	ScanDeadline time.Duration `yaml:"scan_deadline"`

	// MinEvidenceForDeepCrawl gates stage 2 on stage 1 output.
	MinEvidenceForDeepCrawl int `yaml:"min_evidence_for_deep_crawl"`

	// ContinueOnError lets later stages run after a stage failure.
	// Pointer so an explicit false in YAML survives the defaults merge.
	ContinueOnError *bool `yaml:"continue_on_error"`

	// EvidenceBatchSize is the pool's store flush batch.
	EvidenceBatchSize int `yaml:"evidence_batch_size"`

	// QualityThreshold is the per-pillar quality bar for the quality summary.
	QualityThreshold float64 `yaml:"quality_threshold"`

	// EventRetentionGrace is how long progress events outlive scan
	// termination before cleanup.
	EventRetentionGrace time.Duration `yaml:"event_retention_grace"`
}

// ContinueOnErrorEnabled resolves the pointer with its default of true.
func (c *PipelineConfig) ContinueOnErrorEnabled() bool {
	if c.ContinueOnError == nil {
		return true
	}
	return *c.ContinueOnError
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		StageTimeout:            120 * time.Second,
		ScanDeadline:            2 * time.Hour,
		MinEvidenceForDeepCrawl: 10,
		EvidenceBatchSize:       50,
		QualityThreshold:        0.7,
		EventRetentionGrace:     60 * time.Second,
	}
}

// SynthesisConfig tunes report generation.
type SynthesisConfig struct {
	// TopKPerSection caps the evidence passed to the analyzer per pillar.
	TopKPerSection int `yaml:"top_k_per_section"`

	// TopNOverall caps the evidence passed to the overall synthesis.
	TopNOverall int `yaml:"top_n_overall"`

	// CitationNearProximity is the duplicate-citation guard, in characters.
	CitationNearProximity int `yaml:"citation_near_proximity"`

	// ScoreTolerance is the allowed drift between the overall score and the
	// weighted section mean before re-normalization.
	ScoreTolerance float64 `yaml:"score_tolerance"`

	// SectionRetries is the analyzer retry count per section before the
	// section degrades.
	SectionRetries int `yaml:"section_retries"`

	// Analyzer selects and configures the analysis model adapter.
	Analyzer *AnalyzerConfig `yaml:"analyzer"`
}

// AnalyzerConfig configures the analysis model adapter.
type AnalyzerConfig struct {
	// Provider is "heuristic" (deterministic, no network) or "llm".
	Provider string `yaml:"provider"`

	// BaseURL, Model, and APIKeyEnv configure the LLM provider. The API key
	// itself comes from the named environment variable, never from YAML.
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DefaultSynthesisConfig returns the built-in synthesis defaults.
func DefaultSynthesisConfig() *SynthesisConfig {
	return &SynthesisConfig{
		TopKPerSection:        30,
		TopNOverall:           20,
		CitationNearProximity: 50,
		ScoreTolerance:        1.0,
		SectionRetries:        2,
		Analyzer: &AnalyzerConfig{
			Provider:  "heuristic",
			APIKeyEnv: "ANALYZER_API_KEY",
			Timeout:   90 * time.Second,
		},
	}
}

// CollectorConfig holds per-collector settings. Zero values defer to the
// collector's own suggestions.
type CollectorConfig struct {
	Enabled        *bool         `yaml:"enabled"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxConcurrency int           `yaml:"max_concurrency"`
	Cost           float64       `yaml:"cost"`
}

// CollectorsConfig holds collector enablement and the capability priority order.
type CollectorsConfig struct {
	// Collectors maps collector name to its overrides.
	Collectors map[string]CollectorConfig `yaml:"collectors"`

	// CapabilityPriority orders collector names per capability for selection
	// and fallback chains. Unlisted collectors sort after listed ones.
	CapabilityPriority map[string][]string `yaml:"capability_priority"`
}

// DefaultCollectorsConfig returns the built-in collector defaults.
func DefaultCollectorsConfig() *CollectorsConfig {
	return &CollectorsConfig{
		Collectors:         map[string]CollectorConfig{},
		CapabilityPriority: map[string][]string{},
	}
}

// Enabled reports whether the named collector is enabled (default true).
func (c *CollectorsConfig) Enabled(name string) bool {
	cc, ok := c.Collectors[name]
	if !ok || cc.Enabled == nil {
		return true
	}
	return *cc.Enabled
}
