// Package app assembles the application's services in a samber/do
// container and runs their background loops.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"

	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/email"
	"github.com/nfrund/salon/internal/hub"
	"github.com/nfrund/salon/internal/inquiry"
	"github.com/nfrund/salon/internal/pubsub"
	"github.com/nfrund/salon/internal/rendering"
	"github.com/nfrund/salon/web/src/templates/partials"
)

// Tracing owns the tracer used by the event bus.
type Tracing struct {
	Tracer  trace.Tracer
	cleanup func()
}

// Shutdown flushes pending spans.
func (t *Tracing) Shutdown() {
	if t.cleanup != nil {
		t.cleanup()
	}
}

// NewContainer provides the core services every module builds on: config,
// file system, renderer, content store, event bus, email sender, inquiry
// service and push hub. Services are created lazily on first use.
func NewContainer(cfg config.Provider) *do.RootScope {
	i := do.New()

	do.ProvideValue[config.Provider](i, cfg)
	do.ProvideValue[afero.Fs](i, afero.NewOsFs())
	do.ProvideValue[rendering.Renderer](i, rendering.NewHTMLRenderer())

	do.Provide(i, func(i do.Injector) (*Tracing, error) {
		tracer, cleanup, err := pubsub.SetupTracing(context.Background(), pubsub.TracingConfig{
			Enabled:     cfg.GetTracingEnabled(),
			ServiceName: cfg.GetTracingServiceName(),
			ZipkinURL:   cfg.GetTracingZipkinURL(),
		})
		if err != nil {
			return nil, fmt.Errorf("setting up tracing: %w", err)
		}
		return &Tracing{Tracer: tracer, cleanup: cleanup}, nil
	})

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		tracing, err := do.Invoke[*Tracing](i)
		if err != nil {
			return nil, err
		}
		return pubsub.NewWatermillBridgeWithTracer(tracing.Tracer), nil
	})
	do.Provide(i, func(i do.Injector) (pubsub.Publisher, error) {
		bridge, err := do.Invoke[*pubsub.WatermillBridge](i)
		return bridge, err
	})
	do.Provide(i, func(i do.Injector) (pubsub.Subscriber, error) {
		bridge, err := do.Invoke[*pubsub.WatermillBridge](i)
		return bridge, err
	})

	do.Provide(i, func(i do.Injector) (*content.Store, error) {
		store, err := content.NewStore(do.MustInvoke[afero.Fs](i), cfg.GetContentPath())
		if err != nil {
			return nil, fmt.Errorf("loading content: %w", err)
		}
		return store, nil
	})

	do.Provide(i, func(i do.Injector) (email.Sender, error) {
		return email.NewSender(cfg)
	})

	do.Provide(i, func(i do.Injector) (*inquiry.Service, error) {
		return inquiry.NewService(do.MustInvoke[pubsub.Publisher](i), slog.Default().With("component", "inquiry")), nil
	})

	do.Provide(i, func(i do.Injector) (*hub.Hub, error) {
		return hub.NewHub(), nil
	})

	return i
}

// Start runs the background loops owned by the container: the push hub and,
// when enabled, the content watcher. A reloaded document is announced to
// every open page. The loops stop when ctx is canceled.
func Start(ctx context.Context, i do.Injector) error {
	h, err := do.Invoke[*hub.Hub](i)
	if err != nil {
		return err
	}
	go h.Run(ctx)

	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return err
	}
	renderer := do.MustInvoke[rendering.Renderer](i)
	notice, err := renderer.RenderComponent(ctx, partials.ContentUpdated())
	if err != nil {
		return fmt.Errorf("rendering content notice: %w", err)
	}
	store.OnReload(func(doc *content.Document) {
		slog.Info("Content reloaded", "site", doc.Site.Name)
		h.Broadcast(notice)
	})

	cfg := do.MustInvoke[config.Provider](i)
	if cfg.GetContentWatch() && store.Path() != "" {
		go func() {
			if err := store.Watch(ctx); err != nil {
				slog.Error("Content watcher stopped", "path", store.Path(), "error", err)
			}
		}()
	}
	return nil
}
