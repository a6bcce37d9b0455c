package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/termdeck/termdeck/internal/infrastructure/logging"
	"github.com/termdeck/termdeck/internal/shared/types"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	go hub.Run()

	handler := NewHandler(hub, logging.NewNop())
	engine := gin.New()
	engine.GET("/ws", handler.HandleConnection)

	srv := httptest.NewServer(engine)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) types.Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event types.Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read event: %v", err)
	}
	return event
}

func TestConnectionReceivesWelcome(t *testing.T) {
	_, srv := newTestHub(t)
	conn := dial(t, srv)

	welcome := readEvent(t, conn)
	if welcome.Type != "system" {
		t.Fatalf("first event type = %q, want system", welcome.Type)
	}
	data, ok := welcome.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("welcome data is %T, want object", welcome.Data)
	}
	if data["client_id"] == "" {
		t.Fatal("welcome carries no client_id")
	}
}

func TestPublishReachesAllClients(t *testing.T) {
	hub, srv := newTestHub(t)
	first := dial(t, srv)
	second := dial(t, srv)
	readEvent(t, first)
	readEvent(t, second)

	hub.Publish(types.Event{Type: "drawer.update", Data: map[string]int{"generation": 3}})

	for _, conn := range []*websocket.Conn{first, second} {
		event := readEvent(t, conn)
		if event.Type != "drawer.update" {
			t.Fatalf("event type = %q, want drawer.update", event.Type)
		}
	}
}

func TestPingPong(t *testing.T) {
	_, srv := newTestHub(t)
	conn := dial(t, srv)
	readEvent(t, conn)

	if err := conn.WriteJSON(types.WSMessage{Type: "ping"}); err != nil {
		t.Fatalf("write ping: %v", err)
	}
	if event := readEvent(t, conn); event.Type != "pong" {
		t.Fatalf("event type = %q, want pong", event.Type)
	}
}

func TestSubscribeFiltersTopics(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv)
	readEvent(t, conn)

	if err := conn.WriteJSON(types.WSMessage{Type: "subscribe", Topics: []string{"dock.update"}}); err != nil {
		t.Fatalf("write subscribe: %v", err)
	}
	// A pong roundtrip proves the read loop has handed the subscription to
	// the hub, so the filter is live before anything is published.
	if err := conn.WriteJSON(types.WSMessage{Type: "ping"}); err != nil {
		t.Fatalf("write ping: %v", err)
	}
	if event := readEvent(t, conn); event.Type != "pong" {
		t.Fatalf("event type = %q, want pong", event.Type)
	}

	hub.Publish(types.Event{Type: "drawer.update"})
	hub.Publish(types.Event{Type: "dock.update"})

	if event := readEvent(t, conn); event.Type != "dock.update" {
		t.Fatalf("filtered client got %q, want dock.update", event.Type)
	}
}

func TestUnknownMessageType(t *testing.T) {
	_, srv := newTestHub(t)
	conn := dial(t, srv)
	readEvent(t, conn)

	if err := conn.WriteJSON(types.WSMessage{Type: "teleport"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if event := readEvent(t, conn); event.Type != "error" {
		t.Fatalf("event type = %q, want error", event.Type)
	}
}

func TestClientCountTracksConnections(t *testing.T) {
	hub, srv := newTestHub(t)
	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("initial count = %d, want 0", got)
	}

	conn := dial(t, srv)
	readEvent(t, conn)
	waitCount(t, hub, 1)

	conn.Close()
	waitCount(t, hub, 0)
}

func TestCloseDisconnectsClients(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv)
	readEvent(t, conn)

	hub.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event types.Event
	if err := conn.ReadJSON(&event); err == nil {
		t.Fatal("read succeeded after hub close, want connection error")
	}
}

func waitCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count = %d, want %d", hub.ClientCount(), want)
}
