package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Load parses a diligent.yaml file into a Config. Sections absent from the
// file are left nil; Merge fills them from defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// Merge overlays loaded onto base: a non-nil section in loaded replaces the
// base section wholesale, with zero-valued scalar fields backfilled from base.
func Merge(base, loaded *Config) *Config {
	out := *base
	if loaded.Server != nil {
		out.Server = mergeServer(base.Server, loaded.Server)
	}
	if loaded.Queue != nil {
		out.Queue = mergeQueue(base.Queue, loaded.Queue)
	}
	if loaded.Resilience != nil {
		out.Resilience = mergeResilience(base.Resilience, loaded.Resilience)
	}
	if loaded.Pipeline != nil {
		out.Pipeline = mergePipeline(base.Pipeline, loaded.Pipeline)
	}
	if loaded.Synthesis != nil {
		out.Synthesis = mergeSynthesis(base.Synthesis, loaded.Synthesis)
	}
	if loaded.Collectors != nil {
		out.Collectors = loaded.Collectors
		if out.Collectors.Collectors == nil {
			out.Collectors.Collectors = map[string]CollectorConfig{}
		}
		if out.Collectors.CapabilityPriority == nil {
			out.Collectors.CapabilityPriority = map[string][]string{}
		}
	}
	return &out
}

func mergeServer(base, in *ServerConfig) *ServerConfig {
	out := *in
	if out.ListenAddr == "" {
		out.ListenAddr = base.ListenAddr
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = base.ShutdownTimeout
	}
	return &out
}

func mergeQueue(base, in *QueueConfig) *QueueConfig {
	out := *in
	if out.Workers == nil {
		out.Workers = base.Workers
	}
	fillInt(&out.DefaultWorkers, base.DefaultWorkers)
	fillInt(&out.MaxConcurrentScans, base.MaxConcurrentScans)
	fillDur(&out.PollInterval, base.PollInterval)
	fillDur(&out.PollIntervalJitter, base.PollIntervalJitter)
	fillDur(&out.VisibilityTimeout, base.VisibilityTimeout)
	fillDur(&out.HeartbeatInterval, base.HeartbeatInterval)
	fillInt(&out.MaxAttempts, base.MaxAttempts)
	fillDur(&out.RetryInitialDelay, base.RetryInitialDelay)
	fillDur(&out.RetryMaxDelay, base.RetryMaxDelay)
	fillFloat(&out.BackoffFactor, base.BackoffFactor)
	fillDur(&out.GracefulShutdownTimeout, base.GracefulShutdownTimeout)
	fillDur(&out.OrphanScanInterval, base.OrphanScanInterval)
	fillDur(&out.JobRetention, base.JobRetention)
	return &out
}

func mergeResilience(base, in *ResilienceConfig) *ResilienceConfig {
	out := *in
	fillInt(&out.MaxRetries, base.MaxRetries)
	fillDur(&out.RetryInitialDelay, base.RetryInitialDelay)
	fillDur(&out.RetryMaxDelay, base.RetryMaxDelay)
	fillFloat(&out.BackoffFactor, base.BackoffFactor)
	fillInt(&out.BreakerThreshold, base.BreakerThreshold)
	fillDur(&out.BreakerWindow, base.BreakerWindow)
	fillDur(&out.BreakerCooldown, base.BreakerCooldown)
	fillDur(&out.BreakerMaxCooldown, base.BreakerMaxCooldown)
	fillFloat(&out.HealthDegradedBelow, base.HealthDegradedBelow)
	fillFloat(&out.HealthCriticalBelow, base.HealthCriticalBelow)
	return &out
}

func mergePipeline(base, in *PipelineConfig) *PipelineConfig {
	out := *in
	fillDur(&out.StageTimeout, base.StageTimeout)
	fillDur(&out.ScanDeadline, base.ScanDeadline)
	fillInt(&out.MinEvidenceForDeepCrawl, base.MinEvidenceForDeepCrawl)
	if out.ContinueOnError == nil {
		out.ContinueOnError = base.ContinueOnError
	}
	fillInt(&out.EvidenceBatchSize, base.EvidenceBatchSize)
	fillFloat(&out.QualityThreshold, base.QualityThreshold)
	fillDur(&out.EventRetentionGrace, base.EventRetentionGrace)
	return &out
}

func mergeSynthesis(base, in *SynthesisConfig) *SynthesisConfig {
	out := *in
	fillInt(&out.TopKPerSection, base.TopKPerSection)
	fillInt(&out.TopNOverall, base.TopNOverall)
	fillInt(&out.CitationNearProximity, base.CitationNearProximity)
	fillFloat(&out.ScoreTolerance, base.ScoreTolerance)
	fillInt(&out.SectionRetries, base.SectionRetries)
	if out.Analyzer == nil {
		out.Analyzer = base.Analyzer
	} else {
		a := *out.Analyzer
		if a.Provider == "" {
			a.Provider = base.Analyzer.Provider
		}
		if a.APIKeyEnv == "" {
			a.APIKeyEnv = base.Analyzer.APIKeyEnv
		}
		if a.Timeout == 0 {
			a.Timeout = base.Analyzer.Timeout
		}
		out.Analyzer = &a
	}
	return &out
}

func fillInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func fillDur(dst *time.Duration, def time.Duration) {
	if *dst == 0 {
		*dst = def
	}
}

func fillFloat(dst *float64, def float64) {
	if *dst == 0 {
		*dst = def
	}
}

// applyEnvOverrides applies the small set of environment overrides that make
// sense outside the YAML file.
func applyEnvOverrides(cfg *Config) {
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.Server.ListenAddr = addr
	}
	if v := os.Getenv("ANALYZER_PROVIDER"); v != "" {
		cfg.Synthesis.Analyzer.Provider = v
	}
	if v := os.Getenv("ANALYZER_BASE_URL"); v != "" {
		cfg.Synthesis.Analyzer.BaseURL = v
	}
	if v := os.Getenv("ANALYZER_MODEL"); v != "" {
		cfg.Synthesis.Analyzer.Model = v
	}
}
