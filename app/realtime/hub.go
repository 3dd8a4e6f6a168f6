package realtime

import (
	"log"

	"github.com/google/uuid"
)

// Event names match the wire contract the dashboard listens for.
const (
	EventNewAttendance    = "newAttendance"
	EventNewOutstation    = "newOutstation"
	EventNewNotice        = "newNotice"
	EventDeleteOutstation = "deleteOutstation"
	EventDeleteNotice     = "deleteNotice"
)

// Event is a change notification pushed to every connected dashboard.
// Payloads are advisory only; clients re-fetch the affected listing on
// any event rather than patching from the payload.
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"data,omitempty"`
}

// Subscription is one connected dashboard session. Events arrive on C
// until Unsubscribe is called for ID.
type Subscription struct {
	ID string
	C  chan Event
}

// Hub fans change events out to all current subscribers. Delivery is
// best effort: a subscriber whose channel is full gets dropped, and
// nothing is queued for disconnected clients.
type Hub struct {
	register    chan *Subscription
	unregister  chan string
	broadcast   chan Event
	subscribers map[string]*Subscription
}

func NewHub() *Hub {
	return &Hub{
		register:    make(chan *Subscription),
		unregister:  make(chan string),
		broadcast:   make(chan Event, 64),
		subscribers: make(map[string]*Subscription),
	}
}

// Run owns the subscriber set. Start it once, as a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.subscribers[sub.ID] = sub

		case id := <-h.unregister:
			if sub, ok := h.subscribers[id]; ok {
				delete(h.subscribers, id)
				close(sub.C)
			}

		case event := <-h.broadcast:
			for id, sub := range h.subscribers {
				select {
				case sub.C <- event:
				default:
					// Slow consumer; drop it and let the client reconnect.
					log.Printf("Dropping slow subscriber %s", id)
					delete(h.subscribers, id)
					close(sub.C)
				}
			}
		}
	}
}

// Subscribe registers a new dashboard session.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		ID: uuid.New().String(),
		C:  make(chan Event, 16),
	}
	h.register <- sub
	return sub
}

// Unsubscribe removes a session and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.unregister <- id
}

// Publish queues an event for every connected subscriber. It never
// blocks the caller: when the hub cannot keep up the event is discarded.
func (h *Hub) Publish(name string, payload interface{}) {
	select {
	case h.broadcast <- Event{Name: name, Payload: payload}:
	default:
		log.Printf("Broadcast queue full, dropping %s event", name)
	}
}
