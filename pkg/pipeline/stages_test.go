package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/collector"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/models"
)

func TestStageTableCanonicalOrder(t *testing.T) {
	stages := stageTable()
	require.Len(t, stages, TotalStages)

	names := make(map[string]bool)
	for i, st := range stages {
		assert.Equal(t, i+1, st.Index, "stage indexes are 1-based and contiguous")
		assert.False(t, names[st.Name], "stage name %q reused", st.Name)
		names[st.Name] = true
	}

	assert.Equal(t, StageEvidence, stages[8].Name)
	assert.Equal(t, StageReport, stages[9].Name)
	assert.Nil(t, stages[8].Tasks, "evidence processing has no collector tasks")
	assert.Nil(t, stages[9].Tasks, "report generation has no collector tasks")
	for _, st := range stages[:8] {
		require.NotNil(t, st.Tasks, "stage %s must define tasks", st.Name)
	}
}

func TestStageTaskQueues(t *testing.T) {
	stages := stageTable()
	thesis := models.DefaultThesis("Acme")

	initial := stages[0].Tasks(models.DepthDeep, thesis)
	require.Len(t, initial, 2)
	assert.Equal(t, collector.CapWeb, initial[0].Capability)
	assert.Equal(t, config.QueueWebScrape, initial[0].Queue)
	assert.Equal(t, collector.CapTech, initial[1].Capability)
	assert.Equal(t, config.QueueTechDetect, initial[1].Queue)

	deep := stages[1].Tasks(models.DepthDeep, thesis)
	require.Len(t, deep, 1)
	assert.Equal(t, "deep-crawler", deep[0].Collector)
	assert.Empty(t, deep[0].Capability, "named collector tasks carry no capability")
	assert.Greater(t, deep[0].Budget, time.Duration(0), "deep crawl outlives the default stage timeout")

	security := stages[4].Tasks(models.DepthDeep, thesis)
	require.Len(t, security, 3)
	queues := []string{security[0].Queue, security[1].Queue, security[2].Queue}
	assert.ElementsMatch(t, []string{config.QueueSecurity, config.QueueTLSScan, config.QueueVulnScan}, queues)
}

func TestThesisTasksBuildQueriesFromPillarQuestions(t *testing.T) {
	thesis := &models.Thesis{
		ID: "custom",
		Pillars: []models.Pillar{
			{ID: "technology", Weight: 0.5, Questions: []string{"Is the stack modern?"}},
			{ID: "market", Weight: 0.5, Questions: []string{"Who buys it?", "Why now?"}},
		},
	}

	tasks := thesisTasks(models.DepthDeep, thesis)
	require.Len(t, tasks, 1)
	assert.Equal(t, "web-search", tasks[0].Collector)
	assert.Equal(t, config.QueueSearch, tasks[0].Queue)
	assert.Equal(t,
		[]string{"Is the stack modern?", "Who buys it?", "Why now?"},
		tasks[0].Options["queries"])

	exhaustive := thesisTasks(models.DepthExhaustive, thesis)
	require.Len(t, exhaustive, 2)
	assert.Equal(t, collector.CapDeepResearch, exhaustive[1].Capability)
	assert.Equal(t, 15*time.Minute, exhaustive[1].Budget)
}

func TestTaskLabel(t *testing.T) {
	assert.Equal(t, "deep-crawler", Task{Collector: "deep-crawler", Capability: collector.CapWeb}.Label())
	assert.Equal(t, "web", Task{Capability: collector.CapWeb}.Label())
}
