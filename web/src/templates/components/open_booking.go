// Package components holds small building blocks shared by every section
// of the landing page.
package components

import (
	"encoding/json"
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/domain"
)

// BookingModalID is the element every booking fragment replaces.
const BookingModalID = "booking-modal"

// Sources identify which call-to-action opened the modal.
const (
	SourceNav        = "nav"
	SourceMobileMenu = "mobile-menu"
	SourceHero       = "hero"
	SourcePackage    = "package"
	SourceFellowship = "fellowship"
	SourceSticky     = "sticky"
)

// OpenBooking returns the attributes that make an anchor open the booking
// modal preset to pkg. The page root builds it once and hands it to every
// section, so all call-to-actions share one modal.
type OpenBooking func(pkg domain.PackageType, source string) g.Node

// NewOpenBooking builds the page's OpenBooking. Without JavaScript the
// anchor falls back to a full page load with the modal open.
func NewOpenBooking() OpenBooking {
	return func(pkg domain.PackageType, source string) g.Node {
		if pkg == "" {
			pkg = domain.DefaultPackage
		}
		vals, _ := json.Marshal(map[string]string{
			"package": string(pkg),
			"source":  source,
		})
		q := url.Values{"book": {string(pkg)}}
		return g.Group([]g.Node{
			Href("/?" + q.Encode() + "#" + BookingModalID),
			hx.Post("/booking/open"),
			hx.Vals(string(vals)),
			hx.Target("#" + BookingModalID),
			hx.Swap("outerHTML"),
			g.Attr("data-package", string(pkg)),
		})
	}
}
