package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/booking"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/web/src/templates/components"
	"github.com/nfrund/salon/web/src/templates/partials"
	"github.com/nfrund/salon/web/src/templates/sections"
)

// LandingData is everything the landing page renders from.
type LandingData struct {
	Doc          *content.Document
	Nav          partials.NavState
	FAQOpen      int
	Booking      booking.State
	PollInterval string
}

// Landing composes the page in its fixed order. It builds the single
// OpenBooking used by every reserve control.
func Landing(data LandingData) g.Node {
	doc := data.Doc
	open := components.NewOpenBooking()

	return Div(
		ID("page-root"),
		Class("bg-[#FDFBF7] min-h-screen selection:bg-[#C05621] selection:text-white pb-24 md:pb-0"),
		sections.NoiseOverlay(doc.Images),
		partials.NavBar(doc, data.Nav, open, false),
		Main(
			sections.HeroSection(doc, open),
			sections.AboutSection(doc.About),
			sections.VisualBreak(doc.Quote, doc.Images),
			sections.SpeakersSection(doc.Speakers, doc.Images),
			sections.PackagesSection(doc, open),
			sections.ItinerarySection(doc),
			sections.FAQSection(doc.FAQ, data.FAQOpen),
		),
		sections.FooterSection(doc),
		sections.MobileStickyCTA(open),
		partials.BookingModal(data.Booking, doc, partials.ModalOptions{PollInterval: data.PollInterval}),
	)
}
