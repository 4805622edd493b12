package app

import (
	"github.com/nfrund/salon/internal/module"
	"github.com/nfrund/salon/internal/modules/booking"
	"github.com/nfrund/salon/internal/modules/inquiry"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		// Add new application modules here.
		booking.New(),
		inquiry.New(),
	}
}
