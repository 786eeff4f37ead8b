package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps the events returned in one catchup response. A
// subscriber further behind gets a catchup.overflow message and should
// re-fetch over REST.
const catchupLimit = 200

// sendBuffer is the per-subscriber outbound buffer. A subscriber that
// falls this many events behind is dropped rather than allowed to apply
// backpressure to the pipeline.
const sendBuffer = 256

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber joins a channel.
const listenTimeout = 10 * time.Second

// CatchupEvent is one replayed event row.
type CatchupEvent struct {
	ID       int64
	Sequence int64
	Payload  map[string]any
}

// CatchupQuerier replays persisted events for a channel past a sequence.
// Implemented by services.EventService.
type CatchupQuerier interface {
	EventsSince(ctx context.Context, channel string, sinceSeq int64, limit int) ([]CatchupEvent, error)
}

// ConnectionManager tracks WebSocket connections, local (in-process)
// subscribers, and their channel subscriptions. One instance per pod.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// channel → websocket connection ids
	channels map[string]map[string]bool
	// channel → local subscriber id → delivery channel
	locals    map[string]map[uint64]chan []byte
	nextLocal uint64
	channelMu sync.Mutex

	catchupQuerier CatchupQuerier

	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection is one WebSocket client. Outbound messages go through the
// buffered send channel drained by a dedicated writer goroutine; a full
// buffer drops the connection.
//
// subscriptions is only touched by the goroutine running
// HandleConnection (read loop and deferred cleanup), so it needs no lock.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	send          chan []byte
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a manager. The listener is attached later
// via SetListener once both sides exist.
func NewConnectionManager(catchupQuerier CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:    make(map[string]*Connection),
		channels:       make(map[string]map[string]bool),
		locals:         make(map[string]map[uint64]chan []byte),
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs the lifecycle of one WebSocket connection and
// blocks until it closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.New().String(),
		Conn:          conn,
		send:          make(chan []byte, sendBuffer),
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	go m.writeLoop(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.ID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// writeLoop drains the connection's send buffer. Exits when the
// connection context is cancelled or a write fails.
func (m *ConnectionManager) writeLoop(c *Connection) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case data := <-c.send:
			writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
			err := c.Conn.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				slog.Warn("WebSocket write failed, dropping connection",
					"connection_id", c.ID, "error", err)
				c.cancel()
				return
			}
		}
	}
}

// SubscribeLocal attaches an in-process subscriber (the SSE bridge) to a
// channel. Returns the delivery channel and an unsubscribe func. The
// delivery channel is closed when the subscriber is dropped for falling
// behind.
func (m *ConnectionManager) SubscribeLocal(channel string) (<-chan []byte, func(), error) {
	ch := make(chan []byte, sendBuffer)

	m.channelMu.Lock()
	needsListen := !m.channelActive(channel)
	if m.locals[channel] == nil {
		m.locals[channel] = make(map[uint64]chan []byte)
	}
	m.nextLocal++
	id := m.nextLocal
	m.locals[channel][id] = ch
	m.channelMu.Unlock()

	if needsListen {
		if err := m.ensureListen(channel); err != nil {
			m.removeLocal(channel, id, false)
			return nil, nil, err
		}
	}

	unsubscribe := func() { m.removeLocal(channel, id, false) }
	return ch, unsubscribe, nil
}

// Broadcast fans an event out to every subscriber of a channel. Sends
// are non-blocking: a subscriber with a full buffer is dropped.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelMu.Lock()
	ids := make([]string, 0, len(m.channels[channel]))
	for id := range m.channels[channel] {
		ids = append(ids, id)
	}
	type localRef struct {
		id uint64
		ch chan []byte
	}
	localRefs := make([]localRef, 0, len(m.locals[channel]))
	for id, ch := range m.locals[channel] {
		localRefs = append(localRefs, localRef{id, ch})
	}
	m.channelMu.Unlock()

	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if !m.enqueue(conn, event) {
			slog.Warn("Dropping slow WebSocket subscriber",
				"connection_id", conn.ID, "channel", channel)
			conn.cancel()
		}
	}

	for _, ref := range localRefs {
		select {
		case ref.ch <- event:
		default:
			slog.Warn("Dropping slow local subscriber", "channel", channel)
			m.removeLocal(channel, ref.id, true)
		}
	}
}

// ActiveConnections returns the number of live WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount reports ws + local subscribers of a channel. Used by
// tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.Lock()
	defer m.channelMu.Unlock()
	return len(m.channels[channel]) + len(m.locals[channel])
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Late subscribers get the full backlog.
		m.handleCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastSeq != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastSeq)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection on a channel, issuing LISTEN when it
// is the channel's first subscriber. LISTEN completes before subscribe
// returns so the subsequent catchup cannot race a missed NOTIFY.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := !m.channelActive(channel)
	if m.channels[channel] == nil {
		m.channels[channel] = make(map[string]bool)
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		if err := m.ensureListen(channel); err != nil {
			m.channelMu.Lock()
			delete(m.channels[channel], c.ID)
			if len(m.channels[channel]) == 0 {
				delete(m.channels, channel)
			}
			m.channelMu.Unlock()
			return err
		}
	}

	c.subscriptions[channel] = true
	return nil
}

func (m *ConnectionManager) ensureListen(channel string) error {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return nil
	}

	listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()
	if err := l.Subscribe(listenCtx, channel); err != nil {
		slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
		return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
	}
	return nil
}

// unsubscribe removes a ws connection from a channel, releasing the
// LISTEN when the channel has no subscribers left.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
		}
	}
	empty := !m.channelActive(channel)
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)

	if empty {
		m.releaseListen(channel)
	}
}

func (m *ConnectionManager) removeLocal(channel string, id uint64, closeCh bool) {
	m.channelMu.Lock()
	ch, ok := m.locals[channel][id]
	if ok {
		delete(m.locals[channel], id)
		if len(m.locals[channel]) == 0 {
			delete(m.locals, channel)
		}
	}
	empty := !m.channelActive(channel)
	m.channelMu.Unlock()

	if ok && closeCh {
		close(ch)
	}
	if empty {
		m.releaseListen(channel)
	}
}

// channelActive reports whether any ws or local subscriber holds the
// channel. Callers must hold channelMu.
func (m *ConnectionManager) channelActive(channel string) bool {
	return len(m.channels[channel]) > 0 || len(m.locals[channel]) > 0
}

// releaseListen issues UNLISTEN asynchronously, re-checking for a rapid
// resubscribe so an unsubscribe/resubscribe cycle does not drop the
// LISTEN out from under the new subscriber.
func (m *ConnectionManager) releaseListen(channel string) {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		m.channelMu.Lock()
		active := m.channelActive(channel)
		m.channelMu.Unlock()
		if active {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// handleCatchup replays persisted events past lastSeq to one connection.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, lastSeq int64) {
	if m.catchupQuerier == nil {
		return
	}

	events, err := m.catchupQuerier.EventsSince(ctx, channel, lastSeq, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// The stored payload carries seq already; db_event_id is only added
	// at NOTIFY time, so inject it here from the row id.
	for _, evt := range events {
		evt.Payload["seq"] = evt.Sequence
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if !m.enqueue(c, payload) {
			slog.Warn("Dropping subscriber during catchup", "connection_id", c.ID)
			c.cancel()
			return
		}
	}

	if hasMore {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if !m.enqueue(c, data) {
		slog.Warn("Send buffer full, dropping connection", "connection_id", c.ID)
		c.cancel()
	}
}

// enqueue places a message on the connection's send buffer without
// blocking. Returns false when the buffer is full or the connection is
// gone.
func (m *ConnectionManager) enqueue(c *Connection, data []byte) bool {
	select {
	case <-c.ctx.Done():
		return false
	case c.send <- data:
		return true
	default:
		return false
	}
}
