package resilience

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/probeworks/diligent/pkg/config"
)

// HealthLevel classifies overall collector health.
type HealthLevel int

const (
	Healthy HealthLevel = iota
	Degraded
	Critical
)

func (l HealthLevel) String() string {
	switch l {
	case Healthy:
		return "healthy"
	case Degraded:
		return "degraded"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// healthWindow is how many recent invocations feed the per-collector
// success rate and latency percentiles.
const healthWindow = 50

type observation struct {
	ok      bool
	latency time.Duration
}

type collectorHealth struct {
	ring []observation
	next int
	full bool
}

func (h *collectorHealth) add(o observation) {
	if len(h.ring) < healthWindow {
		h.ring = append(h.ring, o)
		return
	}
	h.ring[h.next] = o
	h.next = (h.next + 1) % healthWindow
	h.full = true
}

// CollectorStats is a point-in-time health snapshot for one collector.
type CollectorStats struct {
	Collector   string
	Invocations int
	SuccessRate float64
	P50         time.Duration
	P95         time.Duration
}

// HealthMonitor aggregates per-collector outcomes and exposes them as
// health levels and prometheus metrics. The orchestrator consults Level
// before optional stages.
type HealthMonitor struct {
	cfg      *config.ResilienceConfig
	breakers *BreakerSet

	mu         sync.Mutex
	collectors map[string]*collectorHealth

	invocations *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	breakerOpen prometheus.GaugeFunc
}

func NewHealthMonitor(cfg *config.ResilienceConfig, breakers *BreakerSet, reg prometheus.Registerer) *HealthMonitor {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &HealthMonitor{
		cfg:        cfg,
		breakers:   breakers,
		collectors: make(map[string]*collectorHealth),
		invocations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "diligent_collector_invocations_total",
			Help: "Collector invocations by outcome.",
		}, []string{"collector", "result"}),
		latency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "diligent_collector_latency_seconds",
			Help:    "Collector invocation latency.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"collector"}),
	}
	m.breakerOpen = promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Name: "diligent_breakers_open",
		Help: "Number of circuit breakers currently open.",
	}, func() float64 { return float64(breakers.OpenCount()) })
	return m
}

// Observe records one collector invocation outcome.
func (m *HealthMonitor) Observe(collectorName string, ok bool, latency time.Duration) {
	result := "success"
	if !ok {
		result = "failure"
	}
	m.invocations.WithLabelValues(collectorName, result).Inc()
	m.latency.WithLabelValues(collectorName).Observe(latency.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	h, found := m.collectors[collectorName]
	if !found {
		h = &collectorHealth{}
		m.collectors[collectorName] = h
	}
	h.add(observation{ok: ok, latency: latency})
}

// Stats returns the snapshot for one collector. The zero snapshot is
// returned for collectors never observed.
func (m *HealthMonitor) Stats(collectorName string) CollectorStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := CollectorStats{Collector: collectorName}
	h, found := m.collectors[collectorName]
	if !found || len(h.ring) == 0 {
		return s
	}

	lats := make([]time.Duration, 0, len(h.ring))
	okCount := 0
	for _, o := range h.ring {
		if o.ok {
			okCount++
		}
		lats = append(lats, o.latency)
	}
	sort.Slice(lats, func(i, j int) bool { return lats[i] < lats[j] })

	s.Invocations = len(h.ring)
	s.SuccessRate = float64(okCount) / float64(len(h.ring))
	s.P50 = percentile(lats, 0.50)
	s.P95 = percentile(lats, 0.95)
	return s
}

// Level aggregates success rate across all observed collectors plus the
// open-breaker count into a single health level.
func (m *HealthMonitor) Level() HealthLevel {
	m.mu.Lock()
	total, ok := 0, 0
	for _, h := range m.collectors {
		for _, o := range h.ring {
			total++
			if o.ok {
				ok++
			}
		}
	}
	m.mu.Unlock()

	if total == 0 {
		return Healthy
	}
	rate := float64(ok) / float64(total)
	switch {
	case rate < m.cfg.HealthCriticalBelow:
		return Critical
	case rate < m.cfg.HealthDegradedBelow || m.breakers.OpenCount() > 0:
		return Degraded
	default:
		return Healthy
	}
}

func percentile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)-1))
	return sorted[idx]
}
