package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyLimit is the safe payload size for pg_notify. PostgreSQL rejects
// payloads over 8000 bytes; anything larger is replaced by a truncation
// envelope carrying only routing fields, and the client fetches the full
// event from the events table.
const notifyLimit = 7900

// Publisher writes progress events. Each event is inserted into the
// events table with the next per-scan sequence and broadcast via
// pg_notify within the same transaction.
//
// The publisher is single-writer per scan (the orchestrator owns the
// scan's stream), which is what makes the MAX(sequence)+1 assignment
// race-free.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the raw database handle
// (database.Client.DB()).
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish persists and broadcasts one progress event on the scan's
// channel. The event's Sequence and Timestamp are assigned here.
func (p *Publisher) Publish(ctx context.Context, scanID string, event ProgressEvent) error {
	event.ScanID = scanID
	event.Timestamp = time.Now()

	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal progress event: %w", err)
	}

	channel := ScanChannel(scanID)

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID, sequence int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (scan_id, channel, sequence, payload, created_at)
		 VALUES ($1, $2, (SELECT COALESCE(MAX(sequence), 0) + 1 FROM events WHERE scan_id = $1), $3, $4)
		 RETURNING id, sequence`,
		scanID, channel, payloadJSON, event.Timestamp,
	).Scan(&eventID, &sequence)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := notifyPayloadFor(payloadJSON, sequence, eventID)
	if err != nil {
		return err
	}

	// pg_notify inside the transaction: the notification is held until
	// COMMIT, so subscribers never see a sequence that did not persist.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// NotifyScanList broadcasts a transient scan status update to the global
// scans channel. Not persisted; the scan list re-fetches on reconnect.
func (p *Publisher) NotifyScanList(ctx context.Context, scanID, status, message string) error {
	payload, err := json.Marshal(map[string]any{
		"kind":    "scan_status",
		"scan_id": scanID,
		"status":  status,
		"message": message,
		"ts":      time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal scan status: %w", err)
	}
	notifyPayload, err := truncateIfNeeded(string(payload))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", GlobalScansChannel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Typed convenience publishers ---
//
// Publish failures are logged, not propagated: progress delivery is
// best-effort and must never fail a scan.

func (p *Publisher) publishLogged(ctx context.Context, scanID string, event ProgressEvent) {
	if err := p.Publish(ctx, scanID, event); err != nil {
		slog.Warn("Failed to publish progress event",
			"scan_id", scanID, "kind", event.Kind, "error", err)
	}
}

// Start announces scan intake.
func (p *Publisher) Start(ctx context.Context, scanID, companyName string, depth string) {
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind: EventStart,
		Data: map[string]any{"company": companyName, "depth": depth},
	})
}

// PhaseStart announces a pipeline stage beginning.
func (p *Publisher) PhaseStart(ctx context.Context, scanID, stage string) {
	p.publishLogged(ctx, scanID, ProgressEvent{Kind: EventPhaseStart, Stage: stage})
}

// PhaseComplete announces a stage's terminal status and evidence yield.
func (p *Publisher) PhaseComplete(ctx context.Context, scanID, stage, status string, evidenceCount int) {
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind:  EventPhaseComplete,
		Stage: stage,
		Data:  map[string]any{"status": status, "evidence_count": evidenceCount},
	})
}

// CollectorStart announces a collector invocation within a stage.
func (p *Publisher) CollectorStart(ctx context.Context, scanID, stage, collector string) {
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind: EventCollectorStart, Stage: stage, Collector: collector,
	})
}

// CollectorSuccess reports a collector finishing with evidence.
func (p *Publisher) CollectorSuccess(ctx context.Context, scanID, stage, collector string, items int, fallback bool) {
	data := map[string]any{"items": items}
	if fallback {
		data["fallback"] = true
	}
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind: EventCollectorSuccess, Stage: stage, Collector: collector, Data: data,
	})
}

// CollectorError reports a collector failure with its error kind.
func (p *Publisher) CollectorError(ctx context.Context, scanID, stage, collector, kind, message string) {
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind: EventCollectorError, Stage: stage, Collector: collector,
		Data: map[string]any{"error_kind": kind, "message": message},
	})
}

// EvidenceCollected reports the pool's running totals after a stage.
func (p *Publisher) EvidenceCollected(ctx context.Context, scanID string, total, deduplicated int) {
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind: EventEvidenceCollected,
		Data: map[string]any{"total": total, "deduplicated": deduplicated},
	})
}

// AnalysisStart announces the per-pillar analysis phase.
func (p *Publisher) AnalysisStart(ctx context.Context, scanID string) {
	p.publishLogged(ctx, scanID, ProgressEvent{Kind: EventAnalysisStart})
}

// CategoryAnalyzed reports one pillar's section result.
func (p *Publisher) CategoryAnalyzed(ctx context.Context, scanID, pillar string, score float64, degraded bool) {
	data := map[string]any{"score": score}
	if degraded {
		data["degraded"] = true
	}
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind: EventCategoryAnalyzed,
		Data: data, Stage: pillar,
	})
}

// SynthesisStart announces the overall report synthesis.
func (p *Publisher) SynthesisStart(ctx context.Context, scanID string) {
	p.publishLogged(ctx, scanID, ProgressEvent{Kind: EventSynthesisStart})
}

// ReportPersisted reports the stored report reference.
func (p *Publisher) ReportPersisted(ctx context.Context, scanID, reportID string, investmentScore float64) {
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind: EventReportPersisted,
		Data: map[string]any{"report_id": reportID, "investment_score": investmentScore},
	})
}

// Complete closes the stream with the scan's terminal status.
func (p *Publisher) Complete(ctx context.Context, scanID, status, reportID string) {
	data := map[string]any{"status": status}
	if reportID != "" {
		data["report_id"] = reportID
	}
	p.publishLogged(ctx, scanID, ProgressEvent{Kind: EventComplete, Data: data})
}

// Error closes the stream with a fatal scan error. kind carries the
// error taxonomy value ("canceled", "timeout", "internal").
func (p *Publisher) Error(ctx context.Context, scanID, kind, message string) {
	p.publishLogged(ctx, scanID, ProgressEvent{
		Kind: EventError,
		Data: map[string]any{"kind": kind, "message": message},
	})
}

// --- Internal helpers ---

// notifyPayloadFor enriches the persisted payload with the assigned
// sequence and row id for catchup tracking, then applies the size limit.
func notifyPayloadFor(payloadJSON []byte, sequence, eventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for enrichment: %w", err)
	}
	m["seq"] = sequence
	m["db_event_id"] = eventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits the NOTIFY
// limit, otherwise a minimal envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= notifyLimit {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Kind      string `json:"kind"`
		ScanID    string `json:"scan_id"`
		Sequence  *int64 `json:"seq,omitempty"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"kind":      routing.Kind,
		"scan_id":   routing.ScanID,
		"truncated": true,
	}
	if routing.Sequence != nil {
		truncated["seq"] = *routing.Sequence
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(out), nil
}
