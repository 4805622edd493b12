package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/handlers"
	appmiddleware "github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/module"
	"github.com/nfrund/salon/internal/visitor"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	injector do.Injector
	modules  []module.Module
	visitors *visitor.Store
	site     *echo.Group
}

// New creates a new Server. Every module registers its services before the
// middleware chain is built, since the chain needs the visitor store.
func New(cfg config.Provider, injector do.Injector, modules []module.Module) (*Server, error) {
	for _, m := range modules {
		if err := m.Register(injector); err != nil {
			return nil, fmt.Errorf("registering module %s: %w", m.Name(), err)
		}
	}

	visitors, err := do.Invoke[*visitor.Store](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving visitor store: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(requestLogger())
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.HasPrefix(cfg.GetAppBaseURL(), "https://"),
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:        e,
		Cfg:      cfg,
		injector: injector,
		modules:  modules,
		visitors: visitors,
	}, nil
}

// Boot registers the core routes and boots every module under the site
// group. Background work started by modules stops when ctx is canceled.
func (s *Server) Boot(ctx context.Context) error {
	if err := s.RegisterRoutes(); err != nil {
		return err
	}
	for _, m := range s.modules {
		if err := m.Boot(ctx, s.site, s.injector); err != nil {
			return fmt.Errorf("booting module %s: %w", m.Name(), err)
		}
	}
	return nil
}

// Start serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.GetServerAddr())
		if err := s.E.Start(s.Cfg.GetServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("shutting down the server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				slog.Warn("Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			slog.Info("Request", attrs...)
			return nil
		},
	})
}

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace. API routes answer with an ErrorResponse, everything
// else with plain text that htmx can show.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				slog.Debug("HTTP error", "status", code, "path", c.Path(), "error", he.Internal)
			}
		} else {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Path(),
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			respErr = c.JSON(code, handlers.ErrorResponse{
				Code:    strings.ToLower(strings.ReplaceAll(http.StatusText(code), " ", "_")),
				Message: message,
			})
		default:
			respErr = c.String(code, message)
		}
		if respErr != nil {
			slog.Error("Failed to write error response", "error", respErr)
		}
	}
}
