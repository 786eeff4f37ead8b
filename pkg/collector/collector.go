// Package collector defines the uniform contract for evidence sources and
// the registry the pipeline selects them from. A collector contacts a single
// external source (crawler, scanner, search engine, research service) and
// returns evidence items; everything about retries, breakers, and fallbacks
// lives in the resilience layer, not here.
package collector

import (
	"context"
	"errors"
	"time"

	"github.com/probeworks/diligent/pkg/models"
)

// Capability tags what kinds of evidence a collector can produce.
type Capability string

// Capability values.
const (
	CapWeb           Capability = "web"
	CapTech          Capability = "tech"
	CapSecurity      Capability = "security"
	CapMarket        Capability = "market"
	CapFinancial     Capability = "financial"
	CapTeam          Capability = "team"
	CapVulnerability Capability = "vulnerability"
	CapTLS           Capability = "tls"
	CapPerformance   Capability = "performance"
	CapDeepResearch  Capability = "deep-research"
)

// Sentinel errors for registry lookups.
var (
	// ErrCollectorNotFound indicates the named collector is not registered
	// or is disabled.
	ErrCollectorNotFound = errors.New("collector not found")

	// ErrNoCapability indicates no enabled collector covers the capability.
	ErrNoCapability = errors.New("no collector for capability")
)

// Input is the invocation input for a collector.
type Input struct {
	ScanID  string
	Company models.Company
	Depth   models.AnalysisDepth

	// Options carries collector-specific parameters (queries, crawl depth,
	// poll handles). Collectors must treat unknown keys as absent.
	Options map[string]any
}

// Collector is a named evidence source.
//
// Collect may return partial evidence AND an error; when partialOk is true
// the evidence pool still consumes the items. Collectors must be idempotent
// in outcome: a re-run on identical input produces evidence with identical
// fingerprints, so deduplication collapses retries.
type Collector interface {
	// Name is the stable identifier.
	Name() string

	// Capabilities advertises what this collector can produce.
	Capabilities() []Capability

	// Cost is the nominal relative cost used for admission and budgeting.
	Cost() float64

	// SuggestedTimeout is the invocation deadline hint; the resilience layer
	// caps it by the stage budget.
	SuggestedTimeout() time.Duration

	// MaxConcurrency bounds concurrent invocations of this collector.
	MaxConcurrency() int

	// Collect gathers evidence for the scan input.
	Collect(ctx context.Context, in Input) (evidence []models.EvidenceItem, partialOk bool, err error)
}

// HasCapability reports whether c advertises cap.
func HasCapability(c Collector, cap Capability) bool {
	for _, have := range c.Capabilities() {
		if have == cap {
			return true
		}
	}
	return false
}
