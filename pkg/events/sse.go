package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SSEStream bridges a scan's progress channel onto a Server-Sent Events
// response. Used by the streaming intake endpoint.
type SSEStream struct {
	scanID      string
	events      <-chan []byte
	unsubscribe func()
}

// OpenScanStream subscribes an in-process consumer to a scan's channel.
// Open the stream before starting the scan so no events are missed.
func (m *ConnectionManager) OpenScanStream(scanID string) (*SSEStream, error) {
	ch, unsubscribe, err := m.SubscribeLocal(ScanChannel(scanID))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to scan stream: %w", err)
	}
	return &SSEStream{scanID: scanID, events: ch, unsubscribe: unsubscribe}, nil
}

// Close releases the subscription. Safe to call after Serve returns.
func (s *SSEStream) Close() {
	s.unsubscribe()
}

// Serve writes the event stream as SSE frames until a terminal event
// (complete or error) arrives, ctx is cancelled, or the subscription is
// dropped for falling behind. Each frame uses the progress event kind as
// its SSE event name.
func (s *SSEStream) Serve(ctx context.Context, w http.ResponseWriter) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload, open := <-s.events:
			if !open {
				// Dropped as a slow subscriber.
				return fmt.Errorf("event stream for scan %s overflowed", s.scanID)
			}

			kind := eventKind(payload)
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", kind, payload); err != nil {
				return err
			}
			flusher.Flush()

			if kind == EventComplete || kind == EventError {
				return nil
			}
		}
	}
}

// eventKind extracts the kind field for the SSE event name. Unknown
// payloads stream under the generic "message" name.
func eventKind(payload []byte) string {
	var envelope struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil || envelope.Kind == "" {
		return "message"
	}
	return envelope.Kind
}
