package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/pkg/collector"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/models"
	"github.com/probeworks/diligent/pkg/resilience"
)

func TestTerminalFor(t *testing.T) {
	tests := []struct {
		name        string
		reportID    string
		anyFailed   bool
		cancelled   bool
		deadlineHit bool
		want        scanrequest.Status
	}{
		{name: "clean run", reportID: "r1", want: scanrequest.StatusAwaitingReview},
		{name: "stage failures with report", reportID: "r1", anyFailed: true, want: scanrequest.StatusCompletedWithErrors},
		{name: "cancelled with report", reportID: "r1", anyFailed: true, cancelled: true, want: scanrequest.StatusCompletedWithErrors},
		{name: "no report", want: scanrequest.StatusFailed},
		{name: "no report after failures", anyFailed: true, want: scanrequest.StatusFailed},
		{name: "deadline without report", anyFailed: true, deadlineHit: true, want: scanrequest.StatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := terminalFor(tt.reportID, tt.anyFailed, tt.cancelled, tt.deadlineHit)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, message)
		})
	}
}

func newGateOrchestrator(t *testing.T) (*Orchestrator, *resilience.HealthMonitor) {
	t.Helper()

	reg, err := collector.NewRegistry(nil)
	require.NoError(t, err)
	rcfg := config.DefaultResilienceConfig()
	breakers := resilience.NewBreakerSet(rcfg, nil)
	health := resilience.NewHealthMonitor(rcfg, breakers, prometheus.NewRegistry())
	exec := resilience.NewExecutor(rcfg, reg, breakers, health, collector.NewHeuristicCollector(), nil, nil)

	return &Orchestrator{
		cfg:      config.DefaultPipelineConfig(),
		executor: exec,
	}, health
}

func TestGateDeepCrawl(t *testing.T) {
	o, _ := newGateOrchestrator(t)
	stages := stageTable()
	deepCrawl := stages[1]

	run := &scanRun{depth: models.DepthShallow, stage1Evidence: 50}
	skip, reason := o.gate(deepCrawl, run)
	assert.True(t, skip)
	assert.Equal(t, "shallow scan", reason)

	run = &scanRun{depth: models.DepthDeep, stage1Evidence: o.cfg.MinEvidenceForDeepCrawl - 1}
	skip, reason = o.gate(deepCrawl, run)
	assert.True(t, skip)
	assert.Contains(t, reason, "below threshold")

	run = &scanRun{depth: models.DepthDeep, stage1Evidence: o.cfg.MinEvidenceForDeepCrawl}
	skip, _ = o.gate(deepCrawl, run)
	assert.False(t, skip)

	// Exhaustive depth crawls regardless of how little stage 1 found.
	run = &scanRun{depth: models.DepthExhaustive, stage1Evidence: 0}
	skip, _ = o.gate(deepCrawl, run)
	assert.False(t, skip)
}

func TestGateThesisStage(t *testing.T) {
	o, _ := newGateOrchestrator(t)
	thesisStage := stageTable()[7]

	skip, reason := o.gate(thesisStage, &scanRun{depth: models.DepthDeep})
	assert.True(t, skip)
	assert.Equal(t, "no investment thesis supplied", reason)

	skip, _ = o.gate(thesisStage, &scanRun{depth: models.DepthDeep, thesis: models.DefaultThesis("Acme")})
	assert.True(t, skip, "the built-in default thesis does not trigger thesis analysis")

	skip, _ = o.gate(thesisStage, &scanRun{
		depth:  models.DepthDeep,
		thesis: &models.Thesis{ID: "client-thesis", Pillars: []models.Pillar{{ID: "tech", Weight: 1}}},
	})
	assert.False(t, skip)
}

func TestGateSkipsOptionalStagesWhenHealthCritical(t *testing.T) {
	o, health := newGateOrchestrator(t)

	for i := 0; i < 20; i++ {
		health.Observe("web-crawler", false, 100*time.Millisecond)
	}
	require.Equal(t, resilience.Critical, health.Level())

	run := &scanRun{depth: models.DepthDeep, thesis: &models.Thesis{ID: "client-thesis"}, stage1Evidence: 100}
	var skipped []string
	for _, st := range stageTable()[:8] {
		if skip, _ := o.gate(st, run); skip {
			skipped = append(skipped, st.Name)
		}
	}
	assert.ElementsMatch(t,
		[]string{StageDeepCrawl, StageSecurity, StageCompetitive, StageFinancial, StageThesis},
		skipped, "optional stages are shed under critical health, required ones still run")
}

func TestSkipReason(t *testing.T) {
	assert.Equal(t, "scan cancelled", skipReason(errClientCancel))
	assert.Equal(t, errScanDeadline.Error(), skipReason(errScanDeadline))
	assert.Equal(t, "scan cancelled", skipReason(fmt.Errorf("wrapped: %w", errClientCancel)))
	assert.Equal(t, "scan context closed", skipReason(context.Canceled))
	assert.Equal(t, "scan context closed", skipReason(errors.New("other")))
}
