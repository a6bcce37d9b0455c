package ws

import (
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/termdeck/termdeck/internal/infrastructure/monitoring"
	"github.com/termdeck/termdeck/internal/shared/types"
)

// sendBuffer is the per-client event buffer. Clients that fall further
// behind lose events.
const sendBuffer = 16

// client is one connected launcher shell.
type client struct {
	id   string
	conn *websocket.Conn
	send chan types.Event
}

type subscription struct {
	client *client
	topics []string
}

// Hub fans events out to connected clients. All client bookkeeping is
// confined to the Run loop, so no locks guard the client set.
type Hub struct {
	register    chan *client
	unregister  chan *client
	broadcast   chan types.Event
	subscribe   chan subscription
	stop        chan struct{}
	stopped     chan struct{}
	stopOnce    sync.Once
	clientCount atomic.Int32
	metrics     *monitoring.Metrics
}

// NewHub creates a hub. Call Run on its own goroutine before serving.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan types.Event, 64),
		subscribe:  make(chan subscription),
		stop:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

// WithMetrics attaches a metrics manager.
func (h *Hub) WithMetrics(m *monitoring.Metrics) *Hub {
	h.metrics = m
	return h
}

// Run owns the client set until Close is called.
func (h *Hub) Run() {
	defer close(h.stopped)

	// topics[cl] empty means the client receives everything.
	topics := make(map[*client]map[string]bool)

	for {
		select {
		case cl := <-h.register:
			topics[cl] = nil
			h.clientCount.Add(1)
			if h.metrics != nil {
				h.metrics.IncWSConnections()
			}
			// The buffer is empty at registration, so the welcome always fits.
			cl.send <- types.Event{
				Type: "system",
				Data: map[string]string{"message": "connected", "client_id": cl.id},
			}

		case cl := <-h.unregister:
			if _, ok := topics[cl]; !ok {
				continue
			}
			delete(topics, cl)
			close(cl.send)
			h.clientCount.Add(-1)
			if h.metrics != nil {
				h.metrics.DecWSConnections()
			}

		case sub := <-h.subscribe:
			if _, ok := topics[sub.client]; !ok {
				continue
			}
			if len(sub.topics) == 0 {
				topics[sub.client] = nil
				continue
			}
			filter := make(map[string]bool, len(sub.topics))
			for _, t := range sub.topics {
				filter[t] = true
			}
			topics[sub.client] = filter

		case event := <-h.broadcast:
			if h.metrics != nil {
				h.metrics.RecordWSEvent(event.Type)
			}
			for cl, filter := range topics {
				if len(filter) > 0 && !filter[event.Type] {
					continue
				}
				select {
				case cl.send <- event:
				default:
					// Client buffer full; it re-syncs on its next fetch.
				}
			}

		case <-h.stop:
			// Send channels stay open; write pumps observe stopped and
			// exit on their own.
			for cl := range topics {
				cl.conn.Close()
			}
			return
		}
	}
}

// Publish queues an event for delivery. It never blocks the caller; when
// the hub itself is saturated the event is dropped.
func (h *Hub) Publish(event types.Event) {
	select {
	case h.broadcast <- event:
	case <-h.stopped:
	default:
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.clientCount.Load())
}

// Close disconnects every client and stops the Run loop.
func (h *Hub) Close() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
	<-h.stopped
}
