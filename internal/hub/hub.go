package hub

import (
	"context"
	"log/slog"
)

const sendBuffer = 16

// Subscriber is one open push connection. A visitor may have several, one
// per browser tab.
type Subscriber struct {
	// VisitorID is the visitor the connection belongs to.
	VisitorID string
	// Send is a buffered channel of outbound fragments. The Hub writes to it
	// and closes it on unregister; the connection drains it.
	Send chan []byte
}

// NewSubscriber creates a subscriber for visitorID with a buffered Send channel.
func NewSubscriber(visitorID string) *Subscriber {
	return &Subscriber{VisitorID: visitorID, Send: make(chan []byte, sendBuffer)}
}

type connQuery struct {
	visitorID string
	reply     chan int
}

type envelope struct {
	visitorID string
	payload   []byte
}

// Hub routes rendered HTML fragments to connected browsers, either to every
// tab of a single visitor or to everyone.
type Hub struct {
	subscribers map[string]map[*Subscriber]struct{}

	register   chan *Subscriber
	unregister chan *Subscriber
	direct     chan envelope
	broadcast  chan []byte
	query      chan connQuery
	done       chan struct{}
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Subscriber]struct{}),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		direct:      make(chan envelope, 64),
		broadcast:   make(chan []byte, 8),
		query:       make(chan connQuery),
		done:        make(chan struct{}),
	}
}

// Register adds s to the hub.
func (h *Hub) Register(s *Subscriber) {
	select {
	case h.register <- s:
	case <-h.done:
		close(s.Send)
	}
}

// Unregister removes s and closes its Send channel.
func (h *Hub) Unregister(s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// SendTo queues payload for every connection of visitorID. Payloads for
// visitors without a connection are dropped.
func (h *Hub) SendTo(visitorID string, payload []byte) {
	select {
	case h.direct <- envelope{visitorID: visitorID, payload: payload}:
	case <-h.done:
	}
}

// Broadcast queues payload for every connection.
func (h *Hub) Broadcast(payload []byte) {
	select {
	case h.broadcast <- payload:
	case <-h.done:
	}
}

// Connections reports how many push connections visitorID has open.
func (h *Hub) Connections(visitorID string) int {
	q := connQuery{visitorID: visitorID, reply: make(chan int, 1)}
	select {
	case h.query <- q:
		return <-q.reply
	case <-h.done:
		return 0
	}
}

// Run processes hub traffic until ctx is canceled. It must be run in a
// separate goroutine. On exit every remaining subscriber is closed.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for _, set := range h.subscribers {
			for s := range set {
				close(s.Send)
			}
		}
		h.subscribers = map[string]map[*Subscriber]struct{}{}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Hub stopped")
			return

		case s := <-h.register:
			set, ok := h.subscribers[s.VisitorID]
			if !ok {
				set = make(map[*Subscriber]struct{})
				h.subscribers[s.VisitorID] = set
			}
			set[s] = struct{}{}
			slog.Debug("Subscriber registered", "visitor_id", s.VisitorID, "connections", len(set))

		case s := <-h.unregister:
			h.remove(s)

		case env := <-h.direct:
			for s := range h.subscribers[env.visitorID] {
				h.deliver(s, env.payload)
			}

		case q := <-h.query:
			q.reply <- len(h.subscribers[q.visitorID])

		case payload := <-h.broadcast:
			slog.Debug("Broadcasting message", "visitors", len(h.subscribers))
			for _, set := range h.subscribers {
				for s := range set {
					h.deliver(s, payload)
				}
			}
		}
	}
}

// deliver uses a non-blocking send. A full buffer means the client is
// stuck, so it is dropped.
func (h *Hub) deliver(s *Subscriber, payload []byte) {
	select {
	case s.Send <- payload:
	default:
		slog.Warn("Unregistering slow subscriber", "visitor_id", s.VisitorID)
		h.remove(s)
	}
}

func (h *Hub) remove(s *Subscriber) {
	set, ok := h.subscribers[s.VisitorID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	close(s.Send)
	if len(set) == 0 {
		delete(h.subscribers, s.VisitorID)
	}
	slog.Debug("Subscriber unregistered", "visitor_id", s.VisitorID)
}
