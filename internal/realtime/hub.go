// Package realtime pushes price delta batches to connected dashboard
// clients over websockets.
package realtime

import (
	"sync"

	"github.com/Zahkklm/FinRiskDetector/internal/logger"
	"github.com/Zahkklm/FinRiskDetector/internal/model"
	"github.com/gorilla/websocket"
)

type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}

	logger logger.Logger
}

func NewHub(logger logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger,
	}
}

func (h *Hub) AddClient(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) RemoveClient(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish broadcasts one delta batch to every client. A client that fails
// to take the write is dropped.
func (h *Hub) Publish(deltas []model.PriceDelta) {
	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.RUnlock()

	for _, conn := range clients {
		if err := conn.WriteJSON(deltas); err != nil {
			h.logger.Warnf("%s: dropping slow websocket client", err)
			h.RemoveClient(conn)
		}
	}
}
