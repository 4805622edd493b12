package server

import (
	"context"
	"errors"
	"log/slog"
)

// Shutdown stops accepting requests and shuts every module down in reverse
// boot order. Services owned by the container are released by its own
// shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")

	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
