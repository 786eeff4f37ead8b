package collector

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/probeworks/diligent/pkg/config"
)

// Registry maps collector names to instances and answers capability lookups.
// Populated at startup; read-only afterward (no locking needed).
type Registry struct {
	cfg        *config.CollectorsConfig
	byName     map[string]Collector
	byCap      map[Capability][]Collector
	registered []string
}

// NewRegistry builds a registry from the given collectors. Disabled
// collectors are invisible to lookup. Duplicate names are an error.
func NewRegistry(cfg *config.CollectorsConfig, collectors ...Collector) (*Registry, error) {
	if cfg == nil {
		cfg = config.DefaultCollectorsConfig()
	}
	r := &Registry{
		cfg:    cfg,
		byName: make(map[string]Collector),
		byCap:  make(map[Capability][]Collector),
	}

	for _, c := range collectors {
		name := c.Name()
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("duplicate collector %q", name)
		}
		if !cfg.Enabled(name) {
			slog.Info("Collector disabled by configuration", "collector", name)
			continue
		}
		r.byName[name] = c
		r.registered = append(r.registered, name)
		for _, cap := range c.Capabilities() {
			r.byCap[cap] = append(r.byCap[cap], c)
		}
	}

	// Order each capability list by the configured priority; unlisted
	// collectors sort after listed ones, then by name for determinism.
	for cap, list := range r.byCap {
		prio := priorityIndex(cfg.CapabilityPriority[string(cap)])
		sort.SliceStable(list, func(i, j int) bool {
			pi, iListed := prio[list[i].Name()]
			pj, jListed := prio[list[j].Name()]
			switch {
			case iListed && jListed:
				return pi < pj
			case iListed:
				return true
			case jListed:
				return false
			default:
				return list[i].Name() < list[j].Name()
			}
		})
	}

	sort.Strings(r.registered)
	return r, nil
}

func priorityIndex(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	return idx
}

// Get returns the named collector.
func (r *Registry) Get(name string) (Collector, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectorNotFound, name)
	}
	return c, nil
}

// ByCapability returns enabled collectors covering cap, in priority order.
func (r *Registry) ByCapability(cap Capability) ([]Collector, error) {
	list := r.byCap[cap]
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoCapability, cap)
	}
	out := make([]Collector, len(list))
	copy(out, list)
	return out, nil
}

// Names returns all enabled collector names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, len(r.registered))
	copy(out, r.registered)
	return out
}

// Timeout resolves the effective timeout for the named collector:
// configuration override first, then the collector's suggestion.
func (r *Registry) Timeout(name string) time.Duration {
	if cc, ok := r.cfg.Collectors[name]; ok && cc.Timeout > 0 {
		return cc.Timeout
	}
	if c, ok := r.byName[name]; ok {
		return c.SuggestedTimeout()
	}
	return 0
}

// MaxConcurrency resolves the effective concurrency cap for the named
// collector: configuration override first, then the collector's own limit.
func (r *Registry) MaxConcurrency(name string) int {
	if cc, ok := r.cfg.Collectors[name]; ok && cc.MaxConcurrency > 0 {
		return cc.MaxConcurrency
	}
	if c, ok := r.byName[name]; ok {
		return c.MaxConcurrency()
	}
	return 1
}
