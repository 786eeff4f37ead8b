package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanChannel(t *testing.T) {
	assert.Equal(t, "scan:abc-123", ScanChannel("abc-123"))
}

func TestTruncateIfNeededPassthrough(t *testing.T) {
	payload := `{"kind":"phase_start","scan_id":"s1","seq":3}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeededEnvelope(t *testing.T) {
	big, err := json.Marshal(map[string]any{
		"kind":        "evidence_collected",
		"scan_id":     "s1",
		"seq":         int64(42),
		"db_event_id": int64(900),
		"data":        map[string]any{"blob": strings.Repeat("x", 9000)},
	})
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(big))
	require.NoError(t, err)
	assert.Less(t, len(out), notifyLimit)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, "evidence_collected", envelope["kind"])
	assert.Equal(t, "s1", envelope["scan_id"])
	assert.EqualValues(t, 42, envelope["seq"])
	assert.EqualValues(t, 900, envelope["db_event_id"])
	assert.NotContains(t, envelope, "data")
}

func TestNotifyPayloadEnrichment(t *testing.T) {
	event := ProgressEvent{Kind: EventPhaseComplete, ScanID: "s1", Stage: "initial-evidence"}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	out, err := notifyPayloadFor(payload, 7, 1234)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.EqualValues(t, 7, m["seq"])
	assert.EqualValues(t, 1234, m["db_event_id"])
	assert.Equal(t, "phase_complete", m["kind"])
	assert.Equal(t, "initial-evidence", m["stage"])
}

func TestNotifyPayloadEnrichmentTruncates(t *testing.T) {
	event := ProgressEvent{
		Kind:   EventCollectorSuccess,
		ScanID: "s1",
		Data:   map[string]any{"raw": strings.Repeat("y", 9000)},
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	out, err := notifyPayloadFor(payload, 9, 55)
	require.NoError(t, err)
	assert.Less(t, len(out), notifyLimit)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	// Routing fields survive so the client can fetch the full row.
	assert.EqualValues(t, 9, m["seq"])
	assert.EqualValues(t, 55, m["db_event_id"])
}
