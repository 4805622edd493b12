package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/web/src/templates/components"
)

// ItinerarySection is the "#itinerary" anchor target. It renders either an
// outbound link or the in-page day list, depending on the document.
func ItinerarySection(doc *content.Document) g.Node {
	it := doc.Itinerary
	title := it.Title
	if title == "" {
		title = "The Journey"
	}

	var body g.Node
	if doc.ItineraryExternal() {
		body = Div(Class("text-center"),
			P(Class("font-['Proza_Libre'] text-slate-600 mb-8"), g.Text("The full day-by-day programme lives on our itinerary page.")),
			A(
				Href(it.ExternalURL),
				Target("_blank"),
				Rel("noopener"),
				Class("inline-flex items-center gap-2 text-[#1A365D] font-bold border-b border-[#1A365D] pb-1 hover:text-[#C05621] hover:border-[#C05621] transition-colors"),
				g.Text("View the Itinerary"),
				components.Icon("arrow-right", 16, ""),
			),
		)
	} else {
		body = Ol(Class("relative border-l border-[#C05621]/40 ml-4 space-y-12"),
			g.Map(it.Days, func(day content.ItineraryDay) g.Node {
				return Li(Class("pl-10 relative"),
					Span(Class("absolute -left-[7px] top-2 w-3 h-3 rounded-full bg-[#C05621]")),
					Span(Class("text-[#C05621] uppercase tracking-[0.2em] text-xs font-bold block mb-2"), g.Text(day.Label)),
					H3(Class("font-['Cormorant_Garamond'] text-3xl text-[#1A365D] mb-3"), g.Text(day.Title)),
					Ul(Class("font-['Proza_Libre'] text-slate-600 space-y-1"),
						g.Map(day.Details, func(d string) g.Node { return Li(g.Text(d)) }),
					),
				)
			}),
		)
	}

	return Section(
		ID("itinerary"),
		Class("py-32 bg-[#FDFBF7]"),
		Div(Class("max-w-4xl mx-auto px-6"),
			Div(Class("text-center mb-16"),
				Span(Class("text-[#C05621] uppercase tracking-[0.2em] text-xs font-bold block mb-4"), g.Text("Itinerary")),
				H2(Class("font-['Cormorant_Garamond'] text-5xl text-[#2D3748]"), g.Text(title)),
			),
			body,
		),
	)
}
