package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gpuadvisor/internal/middleware"
	"gpuadvisor/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

func (h *Handlers) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			// Non-browser clients send no Origin
			return origin == "" || middleware.OriginAllowed(strings.TrimRight(origin, "/"), h.AllowedOrigins)
		},
	}
}

// HandleWebSocket upgrades an authenticated client and streams live stats
func (h *Handlers) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		h.Security.LogFailedAuth(c.ClientIP(), "missing token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if !h.Validator.ValidateToken(token) {
		h.Security.LogFailedAuth(c.ClientIP(), "malformed token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	claims, err := h.Auth.ValidateToken(token)
	if err != nil {
		h.Security.LogFailedAuth(c.ClientIP(), err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ws, err := h.upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "component", "ws", "error", err)
		return
	}
	h.Security.LogWebSocketConnected(c.ClientIP(), claims.ClientName)

	client := &services.ClientConnection{
		ID:   uuid.NewString(),
		Name: claims.ClientName,
		Conn: ws,
		Send: make(chan services.WebSocketMessage, 256),
	}
	h.Hub.Register(client)

	go h.writePump(client)
	go h.readPump(client, c.ClientIP())
}

// readPump reads messages from the WebSocket client
func (h *Handlers) readPump(client *services.ClientConnection, ip string) {
	defer func() {
		h.Hub.Unregister(client.ID)
		client.Conn.Close()
		h.Security.LogWebSocketDisconnected(ip, client.ID)
	}()

	client.Conn.SetReadLimit(64 * 1024)
	_ = client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg services.WebSocketMessage
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("WebSocket read error", "component", "ws", "client_id", client.ID, "error", err)
			}
			return
		}

		switch msg.Type {
		case "auth":
			h.handleAuthMessage(client, ip, msg.Token)

		case "ping":
			h.Hub.SendMessage(client.ID, services.WebSocketMessage{Type: "pong", Timestamp: time.Now()})

		case "subscribe":
			// Every client already receives stats
			slog.Debug("WebSocket client subscribed", "component", "ws", "client_id", client.ID)

		case "unsubscribe":
			return

		default:
			slog.Debug("Unknown WebSocket message type", "component", "ws", "type", msg.Type)
		}
	}
}

func (h *Handlers) handleAuthMessage(client *services.ClientConnection, ip, token string) {
	claims, err := h.Auth.ValidateToken(token)
	if err != nil {
		h.Security.LogFailedAuth(ip, "websocket auth message: "+err.Error())
		h.Hub.SendMessage(client.ID, services.WebSocketMessage{
			Type:      "auth_error",
			Timestamp: time.Now(),
			Error:     "invalid token",
		})
		return
	}
	h.Hub.SendMessage(client.ID, services.WebSocketMessage{
		Type:      "auth_success",
		Timestamp: time.Now(),
		Data:      gin.H{"client_name": claims.ClientName},
	})
}

// writePump writes queued messages and keepalive pings to the client
func (h *Handlers) writePump(client *services.ClientConnection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteJSON(msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					slog.Warn("WebSocket write error", "component", "ws", "client_id", client.ID, "error", err)
				}
				return
			}

		case <-ticker.C:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// HandleTokenStatus checks a token from the Authorization header or the
// token query parameter. Tokens are only minted by the CLI.
func (h *Handlers) HandleTokenStatus(c *gin.Context) {
	token := ""
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if token == "" {
		token = c.Query("token")
	}

	if token == "" {
		h.Security.LogFailedAuth(c.ClientIP(), "missing token in header or query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required in Authorization header or query parameter"})
		return
	}

	claims, err := h.Auth.ValidateToken(token)
	if err != nil {
		h.Security.LogFailedAuth(c.ClientIP(), err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":       true,
		"client_name": claims.ClientName,
		"expires_at":  claims.ExpiresAt.Time,
		"issued_at":   claims.IssuedAt.Time,
	})
}
