package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/salon/internal/hub"
	"github.com/nfrund/salon/internal/middleware"
)

const (
	writeTimeout = 5 * time.Second
	pingInterval = 30 * time.Second
)

// ServeWS upgrades the request to a websocket that receives the visitor's
// pushed fragments. Inbound messages are discarded.
func (h *Handler) ServeWS(c echo.Context) error {
	v, ok := middleware.VisitorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "visitor middleware is not configured")
	}
	logger := middleware.FromContext(c.Request().Context())

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the error response.
		logger.Warn("Websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.CloseNow()

	sub := hub.NewSubscriber(v.ID)
	h.hub.Register(sub)
	defer h.hub.Unregister(sub)
	logger.Debug("Push channel connected", "connections", h.hub.Connections(v.ID))

	ctx := conn.CloseRead(c.Request().Context())
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Push channel closed by client")
			return nil

		case payload, ok := <-sub.Send:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return nil
			}
			if err := write(ctx, conn, payload); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Warn("Push write failed", "error", err)
				}
				return nil
			}

		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Ping(pctx)
			cancel()
			if err != nil {
				logger.Debug("Push channel ping failed", "error", err)
				return nil
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}
