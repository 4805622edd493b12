// Package module defines the lifecycle every feature module follows:
// register services, boot routes, shut down.
package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// Module is a self-contained feature such as the booking modal or the
// inquiry API.
type Module interface {
	// Name identifies the module in logs and errors.
	Name() string

	// Register provides the module's services to the container. It runs for
	// every module before any module boots, so services may depend on each
	// other across modules.
	Register(i do.Injector) error

	// Boot mounts routes on the site group, whose requests carry a visitor,
	// and starts background loops that stop when ctx is canceled.
	Boot(ctx context.Context, site *echo.Group, i do.Injector) error

	// Shutdown releases what Boot started that ctx cancellation does not.
	Shutdown(ctx context.Context) error
}

// BaseModule gives a module no-op lifecycle methods to override.
type BaseModule struct{}

// Register does nothing.
func (BaseModule) Register(do.Injector) error { return nil }

// Boot does nothing.
func (BaseModule) Boot(context.Context, *echo.Group, do.Injector) error { return nil }

// Shutdown does nothing.
func (BaseModule) Shutdown(context.Context) error { return nil }
