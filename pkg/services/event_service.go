package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/probeworks/diligent/ent"
	entevent "github.com/probeworks/diligent/ent/event"
	"github.com/probeworks/diligent/pkg/events"
)

// EventService queries and prunes the persisted progress event stream.
// It implements events.CatchupQuerier.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// EventsSince replays a channel's events with sequence > sinceSeq, in
// sequence order, capped at limit.
func (s *EventService) EventsSince(ctx context.Context, channel string, sinceSeq int64, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.client.Event.Query().
		Where(
			entevent.ChannelEQ(channel),
			entevent.SequenceGT(sinceSeq),
		).
		Order(ent.Asc(entevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, len(rows))
	for i, row := range rows {
		out[i] = events.CatchupEvent{
			ID:       row.ID,
			Sequence: row.Sequence,
			Payload:  row.Payload,
		}
	}
	return out, nil
}

// CleanupScanEvents deletes all events for a scan. Called after the
// retention grace window past scan termination.
func (s *EventService) CleanupScanEvents(ctx context.Context, scanID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(entevent.ScanIDEQ(scanID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup scan events: %w", err)
	}
	return count, nil
}

// CleanupStaleEvents deletes events older than ttl regardless of scan,
// catching streams whose grace-window cleanup never ran (pod crash).
func (s *EventService) CleanupStaleEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(entevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup stale events: %w", err)
	}
	return count, nil
}

// ScheduleCleanup deletes a scan's events after the grace window, giving
// late subscribers time to catch up on the terminal event.
func (s *EventService) ScheduleCleanup(scanID string, grace time.Duration) {
	time.AfterFunc(grace, func() {
		if _, err := s.CleanupScanEvents(context.Background(), scanID); err != nil {
			slog.Warn("Failed to cleanup scan events after grace period",
				"scan_id", scanID, "error", err)
		}
	})
}
