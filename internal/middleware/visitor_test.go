package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/salon/internal/visitor"
)

func newVisitorServer(store *visitor.Store) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))
	e.Use(Visitor(store))
	e.GET("/", func(c echo.Context) error {
		v, ok := VisitorFromContext(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, v.ID)
	})
	return e
}

func TestVisitorAssignsAndReusesID(t *testing.T) {
	store := visitor.NewStore(time.Minute, nil)
	e := newVisitorServer(store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	firstID := rec.Body.String()
	assert.Len(t, firstID, 36)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "salon-session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, firstID, rec.Body.String())
	assert.Equal(t, 1, store.Len())
}

func TestVisitorRejectsForgedCookie(t *testing.T) {
	store := visitor.NewStore(time.Minute, nil)
	e := newVisitorServer(store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "salon-session", Value: "forged"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Body.String(), 36)
}

func TestVisitorRequiresSessionMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, Visitor(visitor.NewStore(time.Minute, nil)))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggerFromContext(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		logger := FromContext(c.Request().Context())
		require.NotNil(t, logger)
		return c.NoContent(http.StatusNoContent)
	}, Logger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
