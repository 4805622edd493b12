package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/rendering"
	"github.com/nfrund/salon/internal/view"
	"github.com/nfrund/salon/internal/visitor"
	"github.com/nfrund/salon/web/src/templates/layouts"
	"github.com/nfrund/salon/web/src/templates/pages"
	"github.com/nfrund/salon/web/src/templates/partials"
)

// HomeHandler serves the landing page.
type HomeHandler struct {
	content  *content.Store
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(store *content.Store, renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{content: store, renderer: renderer}
}

// HomeGet handles the GET request for the landing page. Every full load is a
// mount: the visitor's page state is reset before rendering. A "book" query
// parameter opens the booking modal preset to that tier, which is how the
// reserve links behave without JavaScript.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}
	logger := middleware.FromContext(c.Request().Context())

	v.Mount()

	if book := c.QueryParam("book"); book != "" {
		pkg, err := domain.ParsePackageType(book)
		if err != nil {
			logger.Debug("Ignoring unknown package in booking link", "package", book)
		} else if err := v.Booking.Open(pkg); err != nil {
			logger.Warn("Failed to open booking modal from link", "package", pkg, "error", err)
		}
	}

	doc := h.content.Current()
	snap := v.Snapshot()

	page := pages.Landing(pages.LandingData{
		Doc:          doc,
		Nav:          NavState(snap),
		FAQOpen:      snap.FAQOpen,
		Booking:      v.Booking.State(),
		PollInterval: partials.DefaultPollInterval,
	})

	meta := layouts.PageMeta{
		SiteName:          doc.Site.Name,
		Description:       doc.Hero.Lead,
		Language:          doc.Site.Language,
		FontStylesheetURL: doc.Site.FontStylesheetURL,
	}

	return h.renderer.RenderPage(c, http.StatusOK, layouts.Page(meta, view.GetFlashData(c), view.AdaptGomponentToTempl(page)))
}

// NavState converts a visitor snapshot into what the navigation bar renders.
func NavState(s visitor.Snapshot) partials.NavState {
	return partials.NavState{Mode: s.NavMode, MenuOpen: s.MenuOpen}
}

func visitorFrom(c echo.Context) (*visitor.Visitor, error) {
	v, ok := middleware.VisitorFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "visitor middleware is not configured")
	}
	return v, nil
}
