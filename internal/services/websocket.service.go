package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"gpuadvisor/internal/models"

	"github.com/gorilla/websocket"
)

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"` // "stats", "sample", "auth", "ping", "error"
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Token     string      `json:"token,omitempty"` // client auth messages
}

// StatsPayload is the live GPU and host reading pushed to dashboards
type StatsPayload struct {
	GPU          *models.GPUInfo        `json:"gpu,omitempty"`
	CPU          *models.CPUStatus      `json:"cpu,omitempty"`
	Memory       *models.MemoryStatus   `json:"memory,omitempty"`
	RunningGames []models.ProcessStatus `json:"running_games,omitempty"`
	Timestamp    time.Time              `json:"timestamp"`
}

// StatsSource gathers a payload for one broadcast tick
type StatsSource func(ctx context.Context) *StatsPayload

// SystemStatsSource adapts GetSystemStatus to a hub source
func SystemStatsSource(cache *GPUCache, catalog *Catalog) StatsSource {
	return func(ctx context.Context) *StatsPayload {
		status := GetSystemStatus(ctx, cache, catalog)
		return &StatsPayload{
			GPU:          status.GPU,
			CPU:          status.CPU,
			Memory:       status.Memory,
			RunningGames: status.RunningGames,
			Timestamp:    time.Now(),
		}
	}
}

// ClientConnection represents a connected WebSocket client
type ClientConnection struct {
	ID   string
	Name string
	Conn *websocket.Conn
	Send chan WebSocketMessage
}

// WebSocketHub manages all connected WebSocket clients
type WebSocketHub struct {
	clients    map[string]*ClientConnection
	broadcast  chan WebSocketMessage
	register   chan *ClientConnection
	unregister chan string
	mu         sync.RWMutex
	source     StatsSource
	interval   time.Duration
	done       chan struct{}
}

// NewWebSocketHub creates a hub that broadcasts source every interval once
// Run is started.
func NewWebSocketHub(source StatsSource, interval time.Duration) *WebSocketHub {
	if interval <= 0 {
		interval = time.Second
	}
	return &WebSocketHub{
		clients:    make(map[string]*ClientConnection),
		broadcast:  make(chan WebSocketMessage, 256),
		register:   make(chan *ClientConnection),
		unregister: make(chan string),
		source:     source,
		interval:   interval,
		done:       make(chan struct{}),
	}
}

// Run manages the hub's event loop until ctx is cancelled
func (h *WebSocketHub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.Send)
			}
			h.mu.Unlock()
			close(h.done)
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			slog.Info("WebSocket client connected", "client_id", client.ID, "name", client.Name, "total", total)

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, exists := h.clients[clientID]; exists {
				delete(h.clients, clientID)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			slog.Info("WebSocket client disconnected", "client_id", clientID, "total", total)

		case msg := <-h.broadcast:
			h.fanOut(msg)

		case <-ticker.C:
			if h.ClientCount() == 0 || h.source == nil {
				continue
			}
			stats := h.source(ctx)
			data, err := json.Marshal(stats)
			if err != nil {
				slog.Error("WebSocket stats marshal failed", "error", err)
				continue
			}
			h.fanOut(WebSocketMessage{
				Type:      "stats",
				Timestamp: time.Now(),
				Data:      json.RawMessage(data),
			})
		}
	}
}

func (h *WebSocketHub) fanOut(msg WebSocketMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- msg:
		default:
			// Slow client, drop this message
		}
	}
}

// Register adds a new client to the hub
func (h *WebSocketHub) Register(client *ClientConnection) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.Send)
	}
}

// Unregister removes a client from the hub
func (h *WebSocketHub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.done:
	}
}

// Broadcast queues a message for all connected clients. It never blocks;
// the message is dropped when the queue is full.
func (h *WebSocketHub) Broadcast(msg WebSocketMessage) {
	select {
	case h.broadcast <- msg:
	default:
		slog.Warn("WebSocket broadcast queue full, dropping message", "type", msg.Type)
	}
}

// SendMessage sends a message to a specific client
func (h *WebSocketHub) SendMessage(clientID string, msg WebSocketMessage) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	client, exists := h.clients[clientID]
	if !exists {
		return false
	}

	select {
	case client.Send <- msg:
		return true
	default:
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
