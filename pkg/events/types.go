// Package events delivers per-scan progress streams over WebSocket and
// Server-Sent Events, with PostgreSQL NOTIFY/LISTEN for cross-pod fanout.
//
// Progress events are persisted to the events table and broadcast via
// pg_notify in one transaction, so a NOTIFY is never observed for a row
// that did not commit. Each scan's events carry a monotonically
// increasing sequence; a reconnecting subscriber requests events past its
// last seen sequence and receives the gap from the table.
//
// Delivery is at-least-once to live subscribers and order-preserving per
// scan. Slow subscribers never block the pipeline: each connection has a
// bounded outbound buffer and is dropped when it overflows.
package events

import "time"

// Progress event kinds, in rough lifecycle order.
const (
	EventStart             = "start"
	EventPhaseStart        = "phase_start"
	EventPhaseComplete     = "phase_complete"
	EventCollectorStart    = "collector_start"
	EventCollectorSuccess  = "collector_success"
	EventCollectorError    = "collector_error"
	EventEvidenceCollected = "evidence_collected"
	EventAnalysisStart     = "analysis_start"
	EventCategoryAnalyzed  = "category_analyzed"
	EventSynthesisStart    = "synthesis_start"
	EventReportPersisted   = "report_persisted"
	EventComplete          = "complete"
	EventError             = "error"
)

// GlobalScansChannel carries transient scan-level status updates for the
// scan list view.
const GlobalScansChannel = "scans"

// ScanChannel returns the channel name for one scan's progress stream.
// Format: "scan:{scan_id}".
func ScanChannel(scanID string) string {
	return "scan:" + scanID
}

// ProgressEvent is the wire shape of one progress stream entry. Sequence
// is assigned at publish time and is monotonic per scan.
type ProgressEvent struct {
	Kind      string         `json:"kind"`
	ScanID    string         `json:"scan_id"`
	Sequence  int64          `json:"seq"`
	Stage     string         `json:"stage,omitempty"`
	Collector string         `json:"collector,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"ts"`
}

// ClientMessage is the JSON structure for client to server WebSocket
// messages.
type ClientMessage struct {
	Action  string `json:"action"`             // "subscribe", "unsubscribe", "catchup", "ping"
	Channel string `json:"channel,omitempty"`  // e.g. "scan:abc-123"
	LastSeq *int64 `json:"last_seq,omitempty"` // for catchup
}
