// Package booking wires the booking modal into the application: the
// per-visitor controllers, the modal endpoints and the push channel.
package booking

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	modal "github.com/nfrund/salon/internal/booking"
	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/hub"
	"github.com/nfrund/salon/internal/inquiry"
	"github.com/nfrund/salon/internal/module"
	"github.com/nfrund/salon/internal/rendering"
	"github.com/nfrund/salon/internal/visitor"
)

// BookingModule implements the module.Module interface.
type BookingModule struct {
	module.BaseModule
}

// New creates a new instance of the BookingModule.
func New() *BookingModule {
	return &BookingModule{}
}

// Name returns the unique name for the module.
func (m *BookingModule) Name() string {
	return "booking"
}

// Register provides the Pusher and the visitor store, whose controllers
// submit through the inquiry service and push through the hub.
func (m *BookingModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Pusher, error) {
		return NewPusher(
			do.MustInvoke[*hub.Hub](i),
			do.MustInvoke[*content.Store](i),
			do.MustInvoke[rendering.Renderer](i),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*visitor.Store, error) {
		cfg := do.MustInvoke[config.Provider](i)
		opts := modal.Options{
			SubmitDelay:    cfg.GetSubmitDelay(),
			AutoCloseDelay: cfg.GetAutoCloseDelay(),
			Submitter:      do.MustInvoke[*inquiry.Service](i),
			Logger:         slog.Default().With("module", "booking"),
		}
		return visitor.NewStore(cfg.GetVisitorTTL(), ControllerFactory(opts, do.MustInvoke[*Pusher](i))), nil
	})
	return nil
}

// Boot starts the idle-visitor sweeper and registers the modal routes.
func (m *BookingModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	store := do.MustInvoke[*visitor.Store](i)
	go store.Run(ctx)

	slog.Info("Booting BookingModule: Setting up routes...")

	h := NewHandler(
		do.MustInvoke[*content.Store](i),
		do.MustInvoke[rendering.Renderer](i),
		do.MustInvoke[*hub.Hub](i),
		do.MustInvoke[*inquiry.Service](i),
	)

	g.POST("/booking/open", h.Open)
	g.POST("/booking/field", h.Field)
	g.POST("/booking/submit", h.Submit)
	g.POST("/booking/close", h.Close)
	g.GET("/booking/modal", h.Modal)
	g.GET("/ws", h.ServeWS)
	return nil
}
