// Package pipeline drives a scan through the canonical stage machine:
// collector stages 1-8, evidence processing, and report generation. The
// orchestrate job handler owns all ScanRequest status transitions and the
// append-only StageResult log.
package pipeline

import (
	"time"

	"github.com/probeworks/diligent/pkg/collector"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/models"
)

// TotalStages is the canonical stage count, including evidence processing
// and report generation.
const TotalStages = 10

// Canonical stage names, in order.
const (
	StageInitialEvidence = "initial-evidence"
	StageDeepCrawl       = "deep-crawl"
	StageTechAnalysis    = "tech-analysis"
	StageBusinessIntel   = "business-intel"
	StageSecurity        = "security-assessment"
	StageCompetitive     = "competitive-analysis"
	StageFinancial       = "financial-indicators"
	StageThesis          = "thesis-analysis"
	StageEvidence        = "evidence-processing"
	StageReport          = "report-generation"
)

// Task is one collector dispatch within a stage. Exactly one of Capability
// (the resilience layer picks the collector, with fallback) or Collector
// (a specific one, no chain) is set.
type Task struct {
	Capability collector.Capability
	Collector  string
	Queue      string
	Options    map[string]any

	// Budget overrides the stage timeout for slow collectors (deep crawl,
	// deep research). Zero means the configured stage timeout.
	Budget time.Duration
}

// Label names the task in progress events and dedup keys.
func (t Task) Label() string {
	if t.Collector != "" {
		return t.Collector
	}
	return string(t.Capability)
}

// Stage is one entry of the canonical stage order. Stages 9 and 10 carry
// no collector tasks; the orchestrator handles them directly.
type Stage struct {
	Index int
	Name  string

	// Optional stages are skipped when collector health is critical.
	Optional bool

	// Tasks builds the stage's collector dispatches. Nil for stages 9-10.
	Tasks func(depth models.AnalysisDepth, thesis *models.Thesis) []Task
}

// stageTable returns the canonical stage order. Gating (deep-crawl
// threshold, thesis presence, health) lives in the orchestrator.
func stageTable() []Stage {
	return []Stage{
		{Index: 1, Name: StageInitialEvidence, Tasks: func(models.AnalysisDepth, *models.Thesis) []Task {
			return []Task{
				{Capability: collector.CapWeb, Queue: config.QueueWebScrape},
				{Capability: collector.CapTech, Queue: config.QueueTechDetect},
			}
		}},
		{Index: 2, Name: StageDeepCrawl, Optional: true, Tasks: func(models.AnalysisDepth, *models.Thesis) []Task {
			return []Task{
				{Collector: "deep-crawler", Queue: config.QueueWebScrape, Budget: 5 * time.Minute},
			}
		}},
		{Index: 3, Name: StageTechAnalysis, Tasks: func(models.AnalysisDepth, *models.Thesis) []Task {
			return []Task{
				{Capability: collector.CapTech, Queue: config.QueueTechDetect, Options: map[string]any{"analysis": "full"}},
			}
		}},
		{Index: 4, Name: StageBusinessIntel, Tasks: func(models.AnalysisDepth, *models.Thesis) []Task {
			return []Task{
				{Capability: collector.CapTeam, Queue: config.QueueSearch, Options: map[string]any{"category": models.CategoryTeam}},
			}
		}},
		{Index: 5, Name: StageSecurity, Optional: true, Tasks: func(models.AnalysisDepth, *models.Thesis) []Task {
			return []Task{
				{Capability: collector.CapSecurity, Queue: config.QueueSecurity},
				{Capability: collector.CapTLS, Queue: config.QueueTLSScan},
				{Capability: collector.CapVulnerability, Queue: config.QueueVulnScan},
			}
		}},
		{Index: 6, Name: StageCompetitive, Optional: true, Tasks: func(models.AnalysisDepth, *models.Thesis) []Task {
			return []Task{
				{Capability: collector.CapMarket, Queue: config.QueueSearch, Options: map[string]any{"category": models.CategoryMarket}},
			}
		}},
		{Index: 7, Name: StageFinancial, Optional: true, Tasks: func(models.AnalysisDepth, *models.Thesis) []Task {
			return []Task{
				{Capability: collector.CapFinancial, Queue: config.QueueSearch, Options: map[string]any{"category": models.CategoryFinancial}},
			}
		}},
		{Index: 8, Name: StageThesis, Optional: true, Tasks: thesisTasks},
		{Index: 9, Name: StageEvidence},
		{Index: 10, Name: StageReport},
	}
}

// thesisTasks turns the thesis pillar questions into search queries, plus
// the deep-research collector at exhaustive depth.
func thesisTasks(depth models.AnalysisDepth, thesis *models.Thesis) []Task {
	tasks := []Task{
		{
			Collector: "web-search",
			Queue:     config.QueueSearch,
			Options: map[string]any{
				"category": models.CategoryGeneral,
				"queries":  thesisQueries(thesis),
			},
		},
	}
	if depth == models.DepthExhaustive {
		tasks = append(tasks, Task{
			Capability: collector.CapDeepResearch,
			Queue:      config.QueueSearch,
			Budget:     15 * time.Minute,
		})
	}
	return tasks
}

func thesisQueries(thesis *models.Thesis) []string {
	if thesis == nil {
		return nil
	}
	var queries []string
	for _, p := range thesis.Pillars {
		queries = append(queries, p.Questions...)
	}
	return queries
}
