package booking

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	modal "github.com/nfrund/salon/internal/booking"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/handlers"
	"github.com/nfrund/salon/internal/hub"
	"github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/rendering"
	"github.com/nfrund/salon/internal/validation"
	"github.com/nfrund/salon/internal/view"
	"github.com/nfrund/salon/internal/visitor"
	"github.com/nfrund/salon/web/src/templates/components"
	"github.com/nfrund/salon/web/src/templates/partials"
)

const (
	flashSent       = "Thank you. Your inquiry is with our concierge (reference %s)."
	flashIncomplete = "Please complete your %s to send the inquiry."
	flashFailed     = "We could not send your inquiry. Please try again."
	flashPackage    = "Please choose one of our packages to send the inquiry."
)

// Handler serves the booking modal fragments and the push channel.
type Handler struct {
	content   *content.Store
	renderer  rendering.Renderer
	hub       *hub.Hub
	submitter modal.Submitter
}

// NewHandler creates a booking Handler. submitter delivers inquiries sent
// without JavaScript, where the modal's timers cannot be observed.
func NewHandler(store *content.Store, renderer rendering.Renderer, h *hub.Hub, submitter modal.Submitter) *Handler {
	return &Handler{content: store, renderer: renderer, hub: h, submitter: submitter}
}

// Open shows the modal preset to the requested tier. Opening from the
// mobile menu also closes the menu.
func (h *Handler) Open(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}

	var req handlers.OpenBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking request").SetInternal(err)
	}
	pkg, err := domain.ParsePackageType(req.Package)
	if err != nil {
		return httpError(err)
	}

	var menuWasOpen bool
	v.Do(func(v *visitor.Visitor) {
		menuWasOpen = v.Menu.IsOpen()
		v.Menu.Close()
	})
	if err := v.Booking.Open(pkg); err != nil {
		return httpError(err)
	}
	middleware.FromContext(c.Request().Context()).Info("Booking modal opened", "package", pkg, "source", req.Source)

	nodes := []g.Node{h.modal(v)}
	if menuWasOpen {
		nav := partials.NavBar(h.content.Current(), handlers.NavState(v.Snapshot()), components.NewOpenBooking(), true)
		nodes = append(nodes, nav)
	}
	return h.renderer.RenderPage(c, http.StatusOK, g.Group(nodes))
}

// Field records one edited input. The modal is not re-rendered.
func (h *Handler) Field(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}

	field, err := modal.ParseField(c.FormValue("field"))
	if err != nil {
		return httpError(err)
	}
	if err := v.Booking.SetField(field, c.FormValue(string(field))); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Submit sends the inquiry. htmx requests move the modal to Submitting and
// let the timers finish the job; plain form posts are delivered at once and
// answered with a redirect and a flash message.
func (h *Handler) Submit(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}
	if c.Request().Header.Get("HX-Request") != "true" {
		return h.submitWithoutScript(c, v)
	}

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	for _, field := range modal.Fields() {
		value, ok := form[string(field)]
		if !ok {
			continue
		}
		if err := v.Booking.SetField(field, strings.Join(value, "")); err != nil {
			return httpError(err)
		}
	}

	if err := v.Booking.Submit(); err != nil {
		if errors.Is(err, domain.ErrIncompleteForm) {
			// Field errors are shown inside the modal.
			return h.renderer.RenderPage(c, http.StatusOK, h.modal(v))
		}
		return httpError(err)
	}
	return h.renderer.RenderPage(c, http.StatusOK, h.modal(v))
}

func (h *Handler) submitWithoutScript(c echo.Context, v *visitor.Visitor) error {
	logger := middleware.FromContext(c.Request().Context())

	form := modal.NewForm("")
	for _, field := range modal.Fields() {
		if value := c.FormValue(string(field)); value != "" {
			if err := form.Set(field, value); err != nil {
				logger.Debug("Rejected booking field", "field", field, "error", err)
				view.SetFlashError(c, flashPackage)
				return c.Redirect(http.StatusSeeOther, retryURL(domain.DefaultPackage))
			}
		}
	}
	retry := retryURL(form.PackageType)

	ref, err := h.submitter.Submit(c.Request().Context(), form.Inquiry())
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			view.SetFlashError(c, fmt.Sprintf(flashIncomplete, missingFields(verr)))
		} else {
			logger.Warn("Booking inquiry submission failed", "error", err)
			view.SetFlashError(c, flashFailed)
		}
		return c.Redirect(http.StatusSeeOther, retry)
	}

	v.Booking.Close()
	view.SetFlashSuccess(c, fmt.Sprintf(flashSent, ref))
	return c.Redirect(http.StatusSeeOther, "/")
}

// retryURL reopens the modal for pkg after a full page load.
func retryURL(pkg domain.PackageType) string {
	return "/?" + url.Values{"book": {string(pkg)}}.Encode() + "#" + components.BookingModalID
}

// Close hides the modal from any state.
func (h *Handler) Close(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}
	v.Booking.Close()
	return h.renderer.RenderPage(c, http.StatusOK, h.modal(v))
}

// Modal returns the current modal fragment. The modal polls it while a
// timer is pending.
func (h *Handler) Modal(c echo.Context) error {
	v, err := visitorFrom(c)
	if err != nil {
		return err
	}
	return h.renderer.RenderPage(c, http.StatusOK, h.modal(v))
}

func (h *Handler) modal(v *visitor.Visitor) g.Node {
	return partials.BookingModal(v.Booking.State(), h.content.Current(), partials.ModalOptions{
		PollInterval: partials.DefaultPollInterval,
	})
}

func visitorFrom(c echo.Context) (*visitor.Visitor, error) {
	v, ok := middleware.VisitorFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "visitor middleware is not configured")
	}
	return v, nil
}

func httpError(err error) error {
	status, _ := handlers.ErrorStatus(err)
	return echo.NewHTTPError(status, err.Error()).SetInternal(err)
}

func missingFields(verr *validation.Error) string {
	names := make([]string, 0, len(verr.Fields))
	for k := range verr.Fields {
		names = append(names, strings.ReplaceAll(k, "_", " "))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
