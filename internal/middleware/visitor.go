package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/salon/internal/visitor"
)

const (
	// VisitorContextKey holds the *visitor.Visitor for the request.
	VisitorContextKey = "visitor"

	visitorSessionName = "salon-session"
	visitorIDKey       = "visitor_id"
)

// Visitor identifies the browser through a session cookie, creating a
// visitor ID on first contact, and loads its state from store. It must run
// after the session middleware.
func Visitor(store *visitor.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(visitorSessionName, c)
			if sess == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session middleware is not configured").SetInternal(err)
			}
			if err != nil {
				// A cookie signed with an old secret; start over.
				FromContext(c.Request().Context()).Debug("Discarding unreadable visitor session", "error", err)
			}

			id, _ := sess.Values[visitorIDKey].(string)
			if _, parseErr := uuid.Parse(id); parseErr != nil {
				id = uuid.NewString()
				sess.Values[visitorIDKey] = id
				sess.Options = &sessions.Options{
					Path:     "/",
					MaxAge:   86400 * 30,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				}
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "failed to save visitor session").SetInternal(err)
				}
			}

			c.Set(VisitorContextKey, store.Touch(id))
			req := c.Request()
			logger := FromContext(req.Context()).With("visitor_id", id)
			c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))
			return next(c)
		}
	}
}

// VisitorFromContext returns the visitor set by the Visitor middleware.
func VisitorFromContext(c echo.Context) (*visitor.Visitor, bool) {
	v, ok := c.Get(VisitorContextKey).(*visitor.Visitor)
	return v, ok
}
