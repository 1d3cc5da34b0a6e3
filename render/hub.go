// SPDX-License-Identifier: MIT
//
// File: hub.go
// Role: Websocket Surface broadcasting scene changes to browser clients.
//
// Protocol (server → client JSON, one object per frame):
//   - {"type":"sync","nodes":[…],"edges":[…],"positions":{…},"tags":{…}}
//     sent on connect (full scene) and after every SyncGraph.
//   - {"type":"clear"} after ClearAllVisualState.
//   - {"type":"state","id":"3","tag":"frontier"} after SetVisualState.
//
// Concurrency:
//   - Hub.mu serializes scene updates with their broadcast, so every client
//     observes messages in mutation order, starting from a consistent snapshot.
//   - Each client has a buffered send channel drained by its own write pump.
//     A client whose buffer is full is dropped rather than blocking playback.

package render

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/layout"
	"github.com/katalvlaran/walkview/playback"
)

// Message types sent by Hub.
const (
	MessageSync  = "sync"
	MessageClear = "clear"
	MessageState = "state"
)

const (
	sendBuffer   = 256
	writeTimeout = 5 * time.Second
	readLimit    = 4096
)

// Message is one server → client frame.
type Message struct {
	Type      string                     `json:"type"`
	Nodes     []core.Node                `json:"nodes,omitempty"`
	Edges     []core.Edge                `json:"edges,omitempty"`
	Positions map[string]layout.Position `json:"positions,omitempty"`
	Tags      map[string]playback.Tag    `json:"tags,omitempty"`
	ID        string                     `json:"id,omitempty"`
	Tag       string                     `json:"tag,omitempty"`
}

func syncMessage(s Scene) Message {
	return Message{Type: MessageSync, Nodes: s.Nodes, Edges: s.Edges, Positions: s.Positions, Tags: s.Tags}
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan Message
}

// Hub is a Surface that streams its scene to websocket clients.
type Hub struct {
	mu       sync.Mutex
	scene    *Memory
	clients  map[*client]struct{}
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithHubLogger sets the hub logger; nil keeps slog.Default().
func WithHubLogger(l *slog.Logger) HubOption {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithCheckOrigin overrides the upgrader origin check (all origins by default).
func WithCheckOrigin(fn func(*http.Request) bool) HubOption {
	return func(h *Hub) {
		if fn != nil {
			h.upgrader.CheckOrigin = fn
		}
	}
}

// NewHub returns an uninitialized hub laying out its scene with l.
func NewHub(l layout.Layout, opts ...HubOption) *Hub {
	h := &Hub{
		scene:   NewMemory(l),
		clients: make(map[*client]struct{}),
		logger:  slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Scene returns the scene backing the hub.
func (h *Hub) Scene() *Memory { return h.scene }

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Initialize binds the hub's scene to container.
func (h *Hub) Initialize(container string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.scene.Initialize(container)
}

// Teardown releases the scene and disconnects every client.
func (h *Hub) Teardown() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	err := h.scene.Teardown()
	for c := range h.clients {
		h.dropLocked(c)
	}

	return err
}

// SyncGraph replaces the scene and broadcasts it.
func (h *Hub) SyncGraph(nodes []core.Node, edges []core.Edge) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if scene, ok := h.scene.sync(nodes, edges); ok {
		h.broadcastLocked(syncMessage(scene))
	}
}

// SetVisualState tags a node and broadcasts the change.
func (h *Hub) SetVisualState(id string, tag playback.Tag) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.scene.set(id, tag) {
		h.broadcastLocked(Message{Type: MessageState, ID: id, Tag: tag.String()})
	}
}

// ClearAllVisualState removes every tag and broadcasts the reset.
func (h *Hub) ClearAllVisualState() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.scene.clearTags() {
		h.broadcastLocked(Message{Type: MessageClear})
	}
}

// ServeWS upgrades the request and streams the scene until the client
// disconnects or the hub is torn down. A hub that is not initialized answers
// 503 without upgrading; one torn down during the upgrade closes the new
// connection at once.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	if h.scene.Container() == "" {
		http.Error(w, ErrNotInitialized.Error(), http.StatusServiceUnavailable)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "err", err)
		return
	}
	c := &client{id: uuid.NewString(), conn: conn, send: make(chan Message, sendBuffer)}

	h.mu.Lock()
	if h.scene.Container() == "" {
		h.mu.Unlock()
		h.logger.Info("websocket client refused, hub torn down", "client", c.id)
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "teardown"),
			time.Now().Add(writeTimeout),
		)
		_ = conn.Close()
		return
	}
	c.send <- syncMessage(h.scene.Snapshot())
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("websocket client connected", "client", c.id)

	go h.writePump(c)
	h.readPump(c)
}

// readPump discards inbound frames and unregisters the client on error.
func (h *Hub) readPump(c *client) {
	c.conn.SetReadLimit(readLimit)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.logger.Info("websocket client disconnected", "client", c.id, "err", err)
			break
		}
	}
	h.mu.Lock()
	h.dropLocked(c)
	h.mu.Unlock()
}

// writePump sends queued messages; a closed queue ends the connection.
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteJSON(msg); err != nil {
			h.logger.Warn("websocket write failed", "client", c.id, "err", err)
			return
		}
	}
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "teardown"),
		time.Now().Add(writeTimeout),
	)
}

// broadcastLocked queues msg for every client. Caller holds h.mu.
func (h *Hub) broadcastLocked(msg Message) {
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("websocket client too slow, dropping", "client", c.id)
			h.dropLocked(c)
		}
	}
}

// dropLocked unregisters c and closes its queue once. Caller holds h.mu.
func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}
