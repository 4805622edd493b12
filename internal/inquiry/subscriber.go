package inquiry

import (
	"context"
	"log/slog"

	"github.com/nfrund/salon/internal/pubsub"
)

// HandlerFunc processes one accepted inquiry.
type HandlerFunc func(ctx context.Context, in Submitted) error

// Subscriber feeds accepted inquiries from the bus to the concierge
// notifier, the journal and any other registered handlers.
type Subscriber struct {
	subscriber pubsub.Subscriber
	handlers   map[string]HandlerFunc
}

// NewSubscriber creates a subscriber on sub.
func NewSubscriber(sub pubsub.Subscriber) *Subscriber {
	return &Subscriber{subscriber: sub, handlers: make(map[string]HandlerFunc)}
}

// Handle registers fn under name. Names appear in logs.
func (s *Subscriber) Handle(name string, fn HandlerFunc) {
	s.handlers[name] = fn
}

// Start subscribes every handler. Each gets its own subscription so a slow
// email provider never delays the journal.
func (s *Subscriber) Start(ctx context.Context) error {
	slog.Info("Starting inquiry subscribers", "handlers", len(s.handlers))

	for name, fn := range s.handlers {
		err := pubsub.Subscribe(ctx, s.subscriber, TopicSubmitted, func(ctx context.Context, in Submitted) error {
			if err := fn(ctx, in); err != nil {
				slog.ErrorContext(ctx, "Inquiry handler failed", "handler", name, "reference", in.Reference, "error", err)
				return err
			}
			slog.DebugContext(ctx, "Inquiry handled", "handler", name, "reference", in.Reference)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
