package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is the message pushed to admin subscribers.
type Event struct {
	Action   string `json:"action"`
	Data     any    `json:"data,omitempty"`
	ClientID uint   `json:"clientId,omitempty"`
	Status   string `json:"status,omitempty"`
}

// NewOrderEvent carries the full checkout payload as submitted.
func NewOrderEvent(data any) Event {
	return Event{Action: "newOrder", Data: data}
}

func UpdateStatusEvent(clientID uint, status string) Event {
	return Event{Action: "updateStatus", ClientID: clientID, Status: status}
}

// Hub is the set of open admin WebSocket connections. Delivery is
// at-most-once: a connection that fails a write is dropped from the set and
// closed, and the broadcast carries on to the rest.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Count returns the number of registered connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends ev to every registered connection. The hub lock also
// serializes writes, which gorilla connections require.
func (h *Hub) Broadcast(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
