package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSubscribeAndBroadcast(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	ch, unsubscribe, err := m.SubscribeLocal(ScanChannel("s1"))
	require.NoError(t, err)
	defer unsubscribe()
	assert.Equal(t, 1, m.subscriberCount(ScanChannel("s1")))

	m.Broadcast(ScanChannel("s1"), []byte(`{"kind":"start"}`))
	select {
	case got := <-ch:
		assert.JSONEq(t, `{"kind":"start"}`, string(got))
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	// Other channels do not leak in.
	m.Broadcast(ScanChannel("other"), []byte(`{"kind":"start"}`))
	select {
	case got := <-ch:
		t.Fatalf("unexpected cross-channel delivery: %s", got)
	default:
	}
}

func TestLocalUnsubscribeReleasesChannel(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	_, unsubscribe, err := m.SubscribeLocal(ScanChannel("s1"))
	require.NoError(t, err)
	require.Equal(t, 1, m.subscriberCount(ScanChannel("s1")))

	unsubscribe()
	assert.Equal(t, 0, m.subscriberCount(ScanChannel("s1")))
}

func TestSlowLocalSubscriberDropped(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	ch, unsubscribe, err := m.SubscribeLocal(ScanChannel("s1"))
	require.NoError(t, err)
	defer unsubscribe()

	// Never read: overflow the buffer by one and the subscriber goes away.
	for i := 0; i <= sendBuffer; i++ {
		m.Broadcast(ScanChannel("s1"), []byte(`{"kind":"evidence_collected"}`))
	}
	assert.Equal(t, 0, m.subscriberCount(ScanChannel("s1")))

	// The delivery channel is closed so a reader observes the drop.
	drained := 0
	for range ch {
		drained++
	}
	assert.Equal(t, sendBuffer, drained)
}

func TestSSEStreamServe(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	stream, err := m.OpenScanStream("s1")
	require.NoError(t, err)
	defer stream.Close()

	rec := httptest.NewRecorder()
	done := make(chan error, 1)
	go func() { done <- stream.Serve(context.Background(), rec) }()

	publish := func(kind string) {
		payload, _ := json.Marshal(ProgressEvent{Kind: kind, ScanID: "s1"})
		m.Broadcast(ScanChannel("s1"), payload)
	}
	publish(EventStart)
	publish(EventPhaseStart)
	publish(EventComplete)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not terminate on complete")
	}

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: start\n")
	assert.Contains(t, body, "event: phase_start\n")
	assert.Contains(t, body, "event: complete\n")
	// The terminal frame ends the stream.
	assert.NotContains(t, body, "event: error")
}

func TestSSEStreamServeCancellation(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	stream, err := m.OpenScanStream("s2")
	require.NoError(t, err)
	defer stream.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- stream.Serve(ctx, httptest.NewRecorder()) }()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not observe cancellation")
	}
}

func TestEventKind(t *testing.T) {
	assert.Equal(t, "phase_start", eventKind([]byte(`{"kind":"phase_start"}`)))
	assert.Equal(t, "message", eventKind([]byte(`{}`)))
	assert.Equal(t, "message", eventKind([]byte(`not json`)))
}

// stubCatchup returns a fixed page of events.
type stubCatchup struct {
	events []CatchupEvent
	err    error
	gotSeq int64
}

func (s *stubCatchup) EventsSince(_ context.Context, _ string, sinceSeq int64, _ int) ([]CatchupEvent, error) {
	s.gotSeq = sinceSeq
	return s.events, s.err
}

func TestCatchupOverflowMarker(t *testing.T) {
	over := make([]CatchupEvent, catchupLimit+1)
	for i := range over {
		over[i] = CatchupEvent{
			ID:       int64(i + 1),
			Sequence: int64(i + 1),
			Payload:  map[string]any{"kind": "phase_start", "scan_id": "s1"},
		}
	}
	querier := &stubCatchup{events: over}
	m := NewConnectionManager(querier, time.Second)

	c := &Connection{
		ID:            "test-conn",
		send:          make(chan []byte, catchupLimit+8),
		subscriptions: make(map[string]bool),
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	defer c.cancel()

	m.handleCatchup(context.Background(), c, ScanChannel("s1"), 5)
	assert.EqualValues(t, 5, querier.gotSeq)

	var frames []map[string]any
	for {
		select {
		case data := <-c.send:
			var frame map[string]any
			require.NoError(t, json.Unmarshal(data, &frame))
			frames = append(frames, frame)
			continue
		default:
		}
		break
	}

	require.Len(t, frames, catchupLimit+1)
	for i, frame := range frames[:catchupLimit] {
		assert.EqualValues(t, i+1, frame["seq"], fmt.Sprintf("frame %d", i))
		assert.EqualValues(t, i+1, frame["db_event_id"])
	}
	last := frames[catchupLimit]
	assert.Equal(t, "catchup.overflow", last["type"])
	assert.Equal(t, true, last["has_more"])
}
