package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/termdeck/termdeck/internal/infrastructure/logging"
	"github.com/termdeck/termdeck/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // The daemon binds loopback; origin policy lives in CORS
	},
}

// Handler upgrades connections and pumps messages between clients and the
// hub.
type Handler struct {
	hub    *Hub
	logger *logging.Logger
}

// NewHandler creates a WebSocket handler.
func NewHandler(hub *Hub, logger *logging.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection handles WebSocket upgrade and messages.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan types.Event, sendBuffer),
	}

	select {
	case h.hub.register <- cl:
	case <-h.hub.stopped:
		conn.Close()
		return
	}

	// The hub queues the welcome event during registration.
	go h.writePump(cl)
	h.readLoop(cl)
}

// readLoop consumes client messages until the connection drops.
func (h *Handler) readLoop(cl *client) {
	defer func() {
		select {
		case h.hub.unregister <- cl:
		case <-h.hub.stopped:
		}
		cl.conn.Close()
	}()

	for {
		var msg types.WSMessage
		if err := cl.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("websocket read error", zap.String("client", cl.id), zap.Error(err))
			}
			return
		}

		switch msg.Type {
		case "ping":
			h.push(cl, types.Event{Type: "pong"})
		case "subscribe":
			select {
			case h.hub.subscribe <- subscription{client: cl, topics: msg.Topics}:
			case <-h.hub.stopped:
				return
			}
		default:
			h.push(cl, types.Event{
				Type: "error",
				Data: gin.H{"message": "unknown message type"},
			})
		}
	}
}

// push queues an event for one client without blocking the read loop.
func (h *Handler) push(cl *client, event types.Event) {
	select {
	case cl.send <- event:
	default:
	}
}

// writePump serializes all writes to one connection. It exits when the
// hub closes the send channel on unregister or when the hub stops.
func (h *Handler) writePump(cl *client) {
	defer cl.conn.Close()

	var dead bool
	for {
		select {
		case event, ok := <-cl.send:
			if !ok {
				return
			}
			if dead {
				continue
			}
			if err := cl.conn.WriteJSON(event); err != nil {
				// Keep consuming so hub sends never block; the channel
				// closes once the read side unregisters.
				dead = true
				cl.conn.Close()
			}
		case <-h.hub.stopped:
			return
		}
	}
}
