package booking

import (
	"context"
	"log/slog"

	modal "github.com/nfrund/salon/internal/booking"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/hub"
	"github.com/nfrund/salon/internal/rendering"
	"github.com/nfrund/salon/internal/visitor"
	"github.com/nfrund/salon/web/src/templates/partials"
)

// Pusher renders timer-driven modal transitions and sends them to the
// visitor's open tabs as out-of-band fragments.
type Pusher struct {
	hub      *hub.Hub
	content  *content.Store
	renderer rendering.Renderer
}

// NewPusher creates a Pusher.
func NewPusher(h *hub.Hub, store *content.Store, renderer rendering.Renderer) *Pusher {
	return &Pusher{hub: h, content: store, renderer: renderer}
}

// Push sends the modal for st to visitorID.
func (p *Pusher) Push(visitorID string, st modal.State) {
	node := partials.BookingModal(st, p.content.Current(), partials.ModalOptions{
		OOB:          true,
		PollInterval: partials.DefaultPollInterval,
	})
	payload, err := p.renderer.RenderComponent(context.Background(), node)
	if err != nil {
		slog.Error("Failed to render booking modal for push", "visitor_id", visitorID, "error", err)
		return
	}
	p.hub.SendTo(visitorID, payload)
}

// ControllerFactory builds one booking controller per visitor. Every
// controller shares opts and reports its timer-driven transitions to p.
func ControllerFactory(opts modal.Options, p *Pusher) visitor.ControllerFactory {
	return func(visitorID string) *modal.Controller {
		o := opts
		if o.Logger != nil {
			o.Logger = o.Logger.With("visitor_id", visitorID)
		}
		o.OnChange = func(st modal.State) {
			p.Push(visitorID, st)
		}
		return modal.NewController(o)
	}
}
