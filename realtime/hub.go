// Package realtime implements the chat fan-out registry: an in-process
// mapping from group id to the live websocket connections of that group.
// It owns connection handles only, never message data, and nothing it
// holds survives a restart.
package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Conn wraps a websocket connection with a write mutex; gorilla permits
// only one concurrent writer per connection.
type Conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// WriteText sends one text frame.
func (c *Conn) WriteText(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

// group holds the ordered connection list for one group id behind its own
// lock, so connect/disconnect storms in one group never serialize traffic
// in another.
type group struct {
	mu    sync.Mutex
	conns []*Conn
}

func (g *group) snapshot() []*Conn {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Conn, len(g.conns))
	copy(out, g.conns)
	return out
}

// Hub is the process-wide registry. The registry lock guards only the
// group map; per-group membership is guarded by each group's lock.
type Hub struct {
	mu     sync.RWMutex
	groups map[string]*group
}

func NewHub() *Hub {
	return &Hub{groups: make(map[string]*group)}
}

func (h *Hub) getOrCreate(groupID string) *group {
	h.mu.Lock()
	defer h.mu.Unlock()
	g, ok := h.groups[groupID]
	if !ok {
		g = &group{}
		h.groups[groupID] = g
	}
	return g
}

func (h *Hub) lookup(groupID string) *group {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.groups[groupID]
}

// Join registers a connection under a group id, creating the group entry
// if absent.
func (h *Hub) Join(groupID string, c *Conn) {
	g := h.getOrCreate(groupID)
	g.mu.Lock()
	g.conns = append(g.conns, c)
	g.mu.Unlock()
}

// Leave removes a connection from a group. Removing from an unknown group
// or an unregistered connection is a silent no-op.
func (h *Hub) Leave(groupID string, c *Conn) {
	g := h.lookup(groupID)
	if g == nil {
		return
	}
	g.mu.Lock()
	for i, existing := range g.conns {
		if existing == c {
			g.conns = append(g.conns[:i], g.conns[i+1:]...)
			break
		}
	}
	g.mu.Unlock()
}

// Broadcast delivers payload to every connection currently registered for
// the group, in registration order. A failed send is logged and skipped so
// one dead peer cannot block the rest. The member list is snapshotted
// before sending, so joins and leaves during a broadcast are safe.
func (h *Hub) Broadcast(groupID string, payload []byte) {
	g := h.lookup(groupID)
	if g == nil {
		return
	}
	for _, c := range g.snapshot() {
		if err := c.WriteText(payload); err != nil {
			log.Printf("realtime: dropped send to group %s peer: %v", groupID, err)
		}
	}
}

// GroupSize reports how many connections a group currently holds.
func (h *Hub) GroupSize(groupID string) int {
	g := h.lookup(groupID)
	if g == nil {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.conns)
}
