package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/collector"
	"github.com/probeworks/diligent/pkg/config"
)

func TestTaskPayloadRoundTrip(t *testing.T) {
	task := Task{
		Collector: "web-search",
		Queue:     config.QueueSearch,
		Budget:    90 * time.Second,
		Options: map[string]any{
			"category": "general",
			"queries":  []string{"Is the stack modern?", "Why now?"},
		},
	}

	// Through the jobs table: payload is stored and reloaded as JSON.
	raw, err := json.Marshal(encodeTaskPayload(StageThesis, task))
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))

	p, err := decodeTaskPayload(stored)
	require.NoError(t, err)
	assert.Equal(t, StageThesis, p.Stage)
	assert.Equal(t, "web-search", p.Collector)
	assert.Empty(t, p.Capability)
	assert.Equal(t, 90*time.Second, p.Budget)
	assert.Equal(t, "general", p.Options["category"])
	assert.Equal(t, []string{"Is the stack modern?", "Why now?"}, p.Options["queries"],
		"queries must survive the []any widening")
}

func TestTaskPayloadCapabilityOnly(t *testing.T) {
	p, err := decodeTaskPayload(encodeTaskPayload(StageInitialEvidence, Task{
		Capability: collector.CapWeb,
		Queue:      config.QueueWebScrape,
	}))
	require.NoError(t, err)
	assert.Equal(t, string(collector.CapWeb), p.Capability)
	assert.Zero(t, p.Budget, "zero budget defers to the configured stage timeout")
}

func TestTaskPayloadRejectsEmptyTarget(t *testing.T) {
	_, err := decodeTaskPayload(map[string]any{"stage": StageSecurity})
	assert.Error(t, err)
}
