package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(id string) *ClientConnection {
	return &ClientConnection{ID: id, Name: id, Send: make(chan WebSocketMessage, 4)}
}

func receive(t *testing.T, c *ClientConnection) WebSocketMessage {
	t.Helper()
	select {
	case msg, ok := <-c.Send:
		require.True(t, ok, "channel closed")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
	return WebSocketMessage{}
}

func TestWebSocketHubBroadcastsStats(t *testing.T) {
	source := func(ctx context.Context) *StatsPayload {
		gpu := testGPU("NVIDIA GeForce RTX 3070", 8192)
		return &StatsPayload{GPU: gpu, Timestamp: time.Now()}
	}
	hub := NewWebSocketHub(source, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := newClient("a")
	hub.Register(client)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, time.Millisecond)

	msg := receive(t, client)
	assert.Equal(t, "stats", msg.Type)
	assert.NotNil(t, msg.Data)
}

func TestWebSocketHubDirectAndBroadcast(t *testing.T) {
	hub := NewWebSocketHub(nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	a, b := newClient("a"), newClient("b")
	hub.Register(a)
	hub.Register(b)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, time.Millisecond)

	assert.True(t, hub.SendMessage("a", WebSocketMessage{Type: "pong"}))
	assert.False(t, hub.SendMessage("missing", WebSocketMessage{Type: "pong"}))
	assert.Equal(t, "pong", receive(t, a).Type)

	hub.Broadcast(WebSocketMessage{Type: "notice"})
	assert.Equal(t, "notice", receive(t, a).Type)
	assert.Equal(t, "notice", receive(t, b).Type)

	hub.Unregister("a")
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, time.Millisecond)
	_, ok := <-a.Send
	assert.False(t, ok, "unregister closes the send channel")
}

func TestWebSocketHubShutdown(t *testing.T) {
	hub := NewWebSocketHub(nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	client := newClient("a")
	hub.Register(client)
	cancel()
	<-done

	_, ok := <-client.Send
	assert.False(t, ok)

	// Calls after shutdown return instead of blocking
	late := newClient("late")
	hub.Register(late)
	_, ok = <-late.Send
	assert.False(t, ok)
	hub.Unregister("late")
	assert.Zero(t, hub.ClientCount())
}
