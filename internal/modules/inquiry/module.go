// Package inquiry exposes the inquiry API and starts the handlers that
// deliver accepted inquiries.
package inquiry

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/email"
	intake "github.com/nfrund/salon/internal/inquiry"
	"github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/module"
	"github.com/nfrund/salon/internal/pubsub"
)

// apiRate is the sustained number of API inquiries allowed per second per
// client address.
const apiRate = 2

// InquiryModule implements the module.Module interface.
type InquiryModule struct {
	module.BaseModule
}

// New creates a new instance of the InquiryModule.
func New() *InquiryModule {
	return &InquiryModule{}
}

// Name returns the unique name for the module.
func (m *InquiryModule) Name() string {
	return "inquiry"
}

// Register provides the inquiry subscriber with the concierge notifier and,
// when a journal path is configured, the journal.
func (m *InquiryModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*intake.Subscriber, error) {
		cfg := do.MustInvoke[config.Provider](i)

		sub := intake.NewSubscriber(do.MustInvoke[pubsub.Subscriber](i))
		sub.Handle("concierge", intake.NewConciergeNotifier(do.MustInvoke[email.Sender](i), cfg.GetConciergeEmail()).Handle)
		if path := cfg.GetInquiryJournalPath(); path != "" {
			sub.Handle("journal", intake.NewJournal(do.MustInvoke[afero.Fs](i), path).Handle)
		}
		return sub, nil
	})
	return nil
}

// Boot starts the subscribers and registers the API route.
func (m *InquiryModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	if err := do.MustInvoke[*intake.Subscriber](i).Start(ctx); err != nil {
		return err
	}

	slog.Info("Booting InquiryModule: Setting up routes...")

	h := NewHandler(do.MustInvoke[*intake.Service](i))
	g.POST("/api/inquiries", h.Create, middleware.RateLimiter(apiRate))
	return nil
}
