package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/rendering"
	"github.com/nfrund/salon/internal/visitor"
	"github.com/nfrund/salon/web/src/templates/components"
	"github.com/nfrund/salon/web/src/templates/partials"
)

// UIHandler processes the page interactions that only touch the visitor's
// UI flags: scrolling, the mobile menu and the FAQ accordion.
type UIHandler struct {
	content  *content.Store
	renderer rendering.Renderer
}

// NewUIHandler creates a new UIHandler.
func NewUIHandler(store *content.Store, renderer rendering.Renderer) *UIHandler {
	return &UIHandler{content: store, renderer: renderer}
}

// NavScroll records a scroll position. The navigation bar is only
// re-rendered when it crosses the threshold.
func (h *UIHandler) NavScroll(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}

	var req ScrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scroll offset").SetInternal(err)
	}

	var changed bool
	v.Do(func(v *visitor.Visitor) {
		changed = v.Nav.Observe(req.Offset)
	})
	if !changed {
		return c.NoContent(http.StatusNoContent)
	}
	return h.renderNav(c, v)
}

// MenuToggle opens or closes the mobile menu.
func (h *UIHandler) MenuToggle(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}
	v.Do(func(v *visitor.Visitor) { v.Menu.Toggle() })
	return h.renderNav(c, v)
}

// MenuClose closes the mobile menu, used by its close button and links.
func (h *UIHandler) MenuClose(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}
	v.Do(func(v *visitor.Visitor) { v.Menu.Close() })
	return h.renderNav(c, v)
}

// FAQToggle expands an accordion entry, collapsing any other.
func (h *UIHandler) FAQToggle(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}

	items := h.content.Current().FAQ
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(items) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown FAQ entry")
	}

	v.Do(func(v *visitor.Visitor) { v.FAQ.Toggle(index) })
	return h.renderer.RenderPage(c, http.StatusOK, partials.FAQList(items, v.Snapshot().FAQOpen))
}

func (h *UIHandler) renderNav(c echo.Context, v *visitor.Visitor) error {
	nav := partials.NavBar(h.content.Current(), NavState(v.Snapshot()), components.NewOpenBooking(), false)
	return h.renderer.RenderPage(c, http.StatusOK, nav)
}
