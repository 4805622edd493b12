package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type loggerKey struct{}

// Logger stores a request-scoped logger tagged with the request ID, method
// and route. It must run after the RequestID middleware. Later middleware
// may enrich it with WithLogger.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := slog.Default().With(
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"route", c.Path(),
		)
		c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))
		return next(c)
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request logger, or the default logger outside a
// request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
