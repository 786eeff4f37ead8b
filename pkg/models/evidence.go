package models

import "time"

// Evidence categories (pillar tags). Collectors tag items with one of these;
// the synthesizer partitions by them.
const (
	CategoryTechnology = "technology"
	CategoryMarket     = "market"
	CategorySecurity   = "security"
	CategoryFinancial  = "financial"
	CategoryTeam       = "team"
	CategoryGeneral    = "general"
)

// Fine-grained evidence types. The high-value subset earns a scoring boost
// in the evidence pool.
const (
	TypeWebpage         = "webpage"
	TypeTechStack       = "tech-stack"
	TypeFinancialMetric = "financial-metric"
	TypeTeamInfo        = "team-info"
	TypeSecurity        = "security"
	TypeAPIEndpoint     = "api-endpoint"
	TypeCustomer        = "customer"
	TypeTLSConfig       = "tls-config"
	TypeVulnerability   = "vulnerability"
	TypeSearchResult    = "search-result"
	TypeDeepResearch    = "deep-research"
)

// SourceDescriptor records where an evidence item came from.
type SourceDescriptor struct {
	Kind        string    `json:"kind"`            // "web-crawl", "search", "tls-scan", ...
	URL         string    `json:"url,omitempty"`   // for page/scan sources
	Query       string    `json:"query,omitempty"` // for search sources
	Tool        string    `json:"tool,omitempty"`  // collector name
	CollectedAt time.Time `json:"collected_at"`
}

// EvidenceItem is an in-flight evidence record produced by a collector.
// The evidence pool scores, fingerprints, and deduplicates items before
// persisting them; persisted evidence is immutable.
type EvidenceItem struct {
	ID              string             `json:"id"`
	ScanID          string             `json:"scan_id"`
	Category        string             `json:"category"`
	Type            string             `json:"type"`
	Title           string             `json:"title,omitempty"`
	Raw             string             `json:"raw,omitempty"`
	Summary         string             `json:"summary"`
	Source          SourceDescriptor   `json:"source"`
	MergedSources   []SourceDescriptor `json:"merged_sources,omitempty"`
	Confidence      float64            `json:"confidence"`
	Relevance       float64            `json:"relevance"`
	Score           float64            `json:"score"`
	Tokens          int                `json:"tokens,omitempty"`
	Fallback        bool               `json:"fallback,omitempty"`
	ProcessingTrail []string           `json:"processing_trail,omitempty"`
	Metadata        map[string]any     `json:"metadata,omitempty"`
	Embedding       []float64          `json:"embedding,omitempty"`
	Fingerprint     string             `json:"fingerprint,omitempty"`
}
