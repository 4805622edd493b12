package view_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/salon/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// newFlashServer mimics the no-script booking flow: a form post sets a
// flash and redirects, the landing page reads it.
func newFlashServer() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	e.POST("/booking/submit", func(c echo.Context) error {
		if c.FormValue("name") == "" {
			view.SetFlashError(c, "Please complete your name to send the inquiry.")
		} else {
			view.SetFlashSuccess(c, "Thank you, "+c.FormValue("name")+".")
		}
		return c.Redirect(http.StatusSeeOther, "/")
	})
	e.GET("/", func(c echo.Context) error {
		flash := view.GetFlashData(c)
		return c.String(http.StatusOK, "success="+strings.Join(flash.Success, "|")+";error="+strings.Join(flash.Error, "|"))
	})
	return e
}

func roundTrip(t *testing.T, e *echo.Echo, form string) (string, []*http.Cookie) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/booking/submit", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	get := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		get.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, get)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String(), rec.Result().Cookies()
}

func TestFlashSurvivesRedirect(t *testing.T) {
	e := newFlashServer()

	t.Run("success message", func(t *testing.T) {
		body, _ := roundTrip(t, e, "name=Ama")
		assert.Equal(t, "success=Thank you, Ama.;error=", body)
	})

	t.Run("error message", func(t *testing.T) {
		body, _ := roundTrip(t, e, "name=")
		assert.Equal(t, "success=;error=Please complete your name to send the inquiry.", body)
	})

	t.Run("messages are shown once", func(t *testing.T) {
		_, cleared := roundTrip(t, e, "name=Kofi")
		require.NotEmpty(t, cleared, "reading flashes rewrites the session cookie")

		again := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, ck := range cleared {
			again.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, again)
		assert.Equal(t, "success=;error=", rec.Body.String())
	})
}

func TestFlashDataEmpty(t *testing.T) {
	assert.True(t, view.FlashData{}.Empty())
	assert.False(t, view.FlashData{Error: []string{"x"}}.Empty())
}
