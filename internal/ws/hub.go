package ws

import (
	"CollegeAdmin/internal/lib/sl"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Event is a lifecycle notification sent to dashboard clients.
type Event struct {
	Type string      `json:"type"`
	Time time.Time   `json:"time"`
	Data interface{} `json:"data"`
}

// Hub keeps the set of feed subscribers and fans events out to them.
type Hub struct {
	clients    map[*Subscriber]bool
	broadcast  chan *Event
	register   chan *Subscriber
	unregister chan *Subscriber
	mu         sync.RWMutex
	log        *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Subscriber]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Subscriber),
		unregister: make(chan *Subscriber),
		log:        log.With(sl.Module("ws.hub")),
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub] = true
			h.mu.Unlock()
			h.log.With(
				slog.String("subscriber", sub.id),
				slog.String("user", sub.user),
			).Debug("subscriber connected")

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub]; ok {
				delete(h.clients, sub)
				close(sub.queue)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				h.log.With(sl.Err(err)).Error("marshal event")
				continue
			}
			h.mu.Lock()
			for sub := range h.clients {
				select {
				case sub.queue <- data:
				default:
					close(sub.queue)
					delete(h.clients, sub)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues an event for every subscriber. Events are dropped when
// the queue is full.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &Event{
		Type: eventType,
		Time: time.Now().UTC(),
		Data: data,
	}
	select {
	case h.broadcast <- event:
	default:
		h.log.With(slog.String("type", eventType)).Warn("event queue full, dropping event")
	}
}

// Clients returns the number of subscribers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
