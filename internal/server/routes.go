package server

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/handlers"
	"github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/rendering"
	"github.com/nfrund/salon/web"
)

// RegisterRoutes sets up the core application routes. Routes that need the
// visitor's page state live in the site group, which modules extend.
func (s *Server) RegisterRoutes() error {
	store, err := do.Invoke[*content.Store](s.injector)
	if err != nil {
		return fmt.Errorf("resolving content store: %w", err)
	}
	renderer := do.MustInvoke[rendering.Renderer](s.injector)

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	s.E.StaticFS("/static", static)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	s.site = s.E.Group("", middleware.Visitor(s.visitors))

	homeHandler := handlers.NewHomeHandler(store, renderer)
	uiHandler := handlers.NewUIHandler(store, renderer)

	s.site.GET("/", homeHandler.HomeGet)
	s.site.POST("/ui/nav/scroll", uiHandler.NavScroll)
	s.site.POST("/ui/menu/toggle", uiHandler.MenuToggle)
	s.site.POST("/ui/menu/close", uiHandler.MenuClose)
	s.site.POST("/ui/faq/:index/toggle", uiHandler.FAQToggle)
	return nil
}
