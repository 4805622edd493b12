package inquiry

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/email"
)

// ConciergeNotifier emails every accepted inquiry to the concierge desk.
type ConciergeNotifier struct {
	sender email.Sender
	to     string
}

// NewConciergeNotifier creates a notifier that writes to address to.
func NewConciergeNotifier(sender email.Sender, to string) *ConciergeNotifier {
	return &ConciergeNotifier{sender: sender, to: to}
}

// Handle sends the notification for one inquiry.
func (n *ConciergeNotifier) Handle(ctx context.Context, in Submitted) error {
	if n.to == "" {
		slog.DebugContext(ctx, "No concierge address configured, skipping notification", "reference", in.Reference)
		return nil
	}

	var body bytes.Buffer
	if err := conciergeEmail(in).Render(&body); err != nil {
		return fmt.Errorf("render concierge email: %w", err)
	}

	subject := fmt.Sprintf("New %s inquiry from %s", in.PackageType, in.Name)
	if err := n.sender.Send(ctx, n.to, subject, body.String()); err != nil {
		return fmt.Errorf("send concierge email for %s: %w", in.Reference, err)
	}
	return nil
}

func conciergeEmail(in Submitted) g.Node {
	row := func(label, value string) g.Node {
		return Tr(
			Td(Style("padding:4px 12px 4px 0;color:#8a7b6a"), g.Text(label)),
			Td(Style("padding:4px 0"), g.Text(value)),
		)
	}
	return Div(
		H2(g.Text("New booking inquiry")),
		Table(
			row("Reference", in.Reference),
			row("Received", in.ReceivedAt.Format("2 Jan 2006 15:04 MST")),
			row("Package", string(in.PackageType)),
			row("Name", in.Name),
			row("Email", in.Email),
			row("Phone", in.Phone),
			row("Source", in.Source),
		),
		g.If(in.Message != "", P(Style("white-space:pre-wrap"), g.Text(in.Message))),
	)
}
