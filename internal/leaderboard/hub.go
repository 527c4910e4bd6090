package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// MessageTypeLeaderboard tags snapshot pushes.
const MessageTypeLeaderboard = "leaderboard"

// Message is the push-channel frame.
type Message struct {
	Type string  `json:"type"`
	Data []Entry `json:"data"`
}

// EncodeSnapshot builds the push frame for entries.
func EncodeSnapshot(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(Message{Type: MessageTypeLeaderboard, Data: entries})
}

type viewer struct {
	id   uuid.UUID
	send chan []byte
}

// Hub fans snapshots out to connected viewers. A viewer that cannot keep up
// loses frames; the next push supersedes them.
type Hub struct {
	mu      sync.Mutex
	viewers map[uuid.UUID]*viewer

	buffer       int
	writeTimeout time.Duration
	logger       *log.Logger
}

// NewHub creates a hub with the given per-viewer buffer.
func NewHub(buffer int, writeTimeout time.Duration, logger *log.Logger) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Hub{
		viewers:      make(map[uuid.UUID]*viewer),
		buffer:       buffer,
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Broadcast queues frame for every viewer without blocking.
func (h *Hub) Broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, v := range h.viewers {
		select {
		case v.send <- frame:
		default:
			h.logger.Debug("viewer lagging, frame dropped", "viewer", id)
		}
	}
}

func (h *Hub) register() *viewer {
	v := &viewer{id: uuid.New(), send: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.viewers[v.id] = v
	h.mu.Unlock()
	return v
}

func (h *Hub) unregister(v *viewer) {
	h.mu.Lock()
	delete(h.viewers, v.id)
	h.mu.Unlock()
}

// Serve pushes initial and then every broadcast frame to conn until the
// peer goes away or ctx ends. Viewers never send anything meaningful; their
// reads are discarded.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, initial []byte) error {
	v := h.register()
	defer h.unregister(v)

	h.logger.Info("viewer connected", "viewer", v.id, "viewers", h.Count())
	defer h.logger.Info("viewer disconnected", "viewer", v.id)

	ctx = conn.CloseRead(ctx)

	if err := h.write(ctx, conn, initial); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "") //nolint:errcheck
			return nil
		case frame := <-v.send:
			if err := h.write(ctx, conn, frame); err != nil {
				return err
			}
		}
	}
}

func (h *Hub) write(ctx context.Context, conn *websocket.Conn, frame []byte) error {
	wctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	if err := conn.Write(wctx, websocket.MessageText, frame); err != nil {
		return fmt.Errorf("leaderboard: push to viewer: %w", err)
	}
	return nil
}
