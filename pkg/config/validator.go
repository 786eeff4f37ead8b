package config

// Validate checks cross-field invariants that the defaults merge cannot fix.
func (c *Config) Validate() error {
	if c.Queue.DefaultWorkers < 1 {
		return invalid("queue", "default_workers", "must be >= 1, got %d", c.Queue.DefaultWorkers)
	}
	for name, n := range c.Queue.Workers {
		if n < 0 {
			return invalid("queue", "workers."+name, "must be >= 0, got %d", n)
		}
	}
	if c.Queue.MaxConcurrentScans < 1 {
		return invalid("queue", "max_concurrent_scans", "must be >= 1, got %d", c.Queue.MaxConcurrentScans)
	}
	if c.Queue.MaxAttempts < 1 {
		return invalid("queue", "max_attempts", "must be >= 1, got %d", c.Queue.MaxAttempts)
	}
	if c.Queue.BackoffFactor < 1 {
		return invalid("queue", "backoff_factor", "must be >= 1, got %v", c.Queue.BackoffFactor)
	}
	if c.Queue.VisibilityTimeout <= c.Queue.HeartbeatInterval {
		return invalid("queue", "visibility_timeout",
			"must exceed heartbeat_interval (%v), got %v", c.Queue.HeartbeatInterval, c.Queue.VisibilityTimeout)
	}

	if c.Resilience.MaxRetries < 0 {
		return invalid("resilience", "max_retries", "must be >= 0, got %d", c.Resilience.MaxRetries)
	}
	if c.Resilience.BreakerThreshold < 1 {
		return invalid("resilience", "breaker_threshold", "must be >= 1, got %d", c.Resilience.BreakerThreshold)
	}
	if c.Resilience.BreakerMaxCooldown < c.Resilience.BreakerCooldown {
		return invalid("resilience", "breaker_max_cooldown",
			"must be >= breaker_cooldown (%v), got %v", c.Resilience.BreakerCooldown, c.Resilience.BreakerMaxCooldown)
	}
	if c.Resilience.HealthCriticalBelow > c.Resilience.HealthDegradedBelow {
		return invalid("resilience", "health_critical_below",
			"must be <= health_degraded_below (%v), got %v", c.Resilience.HealthDegradedBelow, c.Resilience.HealthCriticalBelow)
	}

	if c.Pipeline.ScanDeadline < c.Pipeline.StageTimeout {
		return invalid("pipeline", "scan_deadline",
			"must be >= stage_timeout (%v), got %v", c.Pipeline.StageTimeout, c.Pipeline.ScanDeadline)
	}
	if c.Pipeline.EvidenceBatchSize < 1 {
		return invalid("pipeline", "evidence_batch_size", "must be >= 1, got %d", c.Pipeline.EvidenceBatchSize)
	}
	if c.Pipeline.QualityThreshold < 0 || c.Pipeline.QualityThreshold > 1 {
		return invalid("pipeline", "quality_threshold", "must be in [0,1], got %v", c.Pipeline.QualityThreshold)
	}

	if c.Synthesis.TopKPerSection < 1 || c.Synthesis.TopKPerSection > 30 {
		return invalid("synthesis", "top_k_per_section", "must be in [1,30], got %d", c.Synthesis.TopKPerSection)
	}
	if c.Synthesis.ScoreTolerance <= 0 {
		return invalid("synthesis", "score_tolerance", "must be > 0, got %v", c.Synthesis.ScoreTolerance)
	}
	switch c.Synthesis.Analyzer.Provider {
	case "heuristic":
	case "llm":
		if c.Synthesis.Analyzer.BaseURL == "" {
			return invalid("synthesis", "analyzer.base_url", "required for the llm provider")
		}
		if c.Synthesis.Analyzer.Model == "" {
			return invalid("synthesis", "analyzer.model", "required for the llm provider")
		}
	default:
		return invalid("synthesis", "analyzer.provider", "unknown provider %q", c.Synthesis.Analyzer.Provider)
	}

	return nil
}
