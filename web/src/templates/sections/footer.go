package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/web/src/templates/components"
	"github.com/nfrund/salon/web/src/templates/partials"
)

// FAQSection wraps the accordion partial.
func FAQSection(items []content.FAQItem, openIndex int) g.Node {
	return Section(
		ID("faq"),
		Class("py-32 bg-[#FDFBF7] max-w-4xl mx-auto px-6"),
		H2(Class("font-['Cormorant_Garamond'] text-4xl text-[#2D3748] mb-12 text-center"), g.Text("Inquiries")),
		partials.FAQList(items, openIndex),
	)
}

// FooterSection holds contact details and the outbound links.
func FooterSection(doc *content.Document) g.Node {
	f := doc.Footer
	return Footer(
		Class("bg-[#0f1f38] text-[#FDFBF7] py-20 border-t border-white/10"),
		Div(Class("max-w-7xl mx-auto px-6 grid md:grid-cols-4 gap-12"),
			Div(Class("md:col-span-2"),
				H2(Class("font-['Cormorant_Garamond'] text-3xl mb-6"), g.Text(doc.Site.Name)),
				P(Class("font-['Proza_Libre'] text-sm text-slate-400 max-w-md leading-relaxed mb-8"), g.Text(f.Blurb)),
				Div(Class("flex gap-4"),
					g.Map(f.Socials, func(s content.Social) g.Node {
						return A(
							g.If(s.Href != "", g.Group([]g.Node{Href(s.Href), Target("_blank"), Rel("noopener")})),
							Aria("label", s.Label),
							Class("w-10 h-10 bg-[#C05621] flex items-center justify-center rounded-full hover:bg-white hover:text-[#C05621] transition-colors"),
							Span(Class("font-serif italic"), g.Text(s.Label)),
						)
					}),
				),
			),
			Div(
				H4(Class("uppercase tracking-widest text-xs font-bold mb-6 text-[#C05621]"), g.Text("Curated")),
				Ul(Class("space-y-4 font-['Cormorant_Garamond'] text-lg text-slate-300"),
					g.Map(f.Links, func(l content.NavItem) g.Node {
						return Li(A(
							Href(l.Href),
							g.If(l.External, g.Group([]g.Node{Target("_blank"), Rel("noopener")})),
							Class("hover:text-white transition-colors"),
							g.Text(l.Label),
						))
					}),
				),
			),
			Div(
				H4(Class("uppercase tracking-widest text-xs font-bold mb-6 text-[#C05621]"), g.Text("Contact")),
				Ul(Class("space-y-4 font-['Cormorant_Garamond'] text-lg text-slate-300"),
					g.If(f.Email != "", Li(A(Href("mailto:"+f.Email), Class("hover:text-white transition-colors"), g.Text(f.Email)))),
					g.If(f.Phone != "", Li(g.Text(f.Phone))),
					g.If(f.ChatDeepLink != "", Li(A(
						Href(f.ChatDeepLink),
						Target("_blank"),
						Rel("noopener"),
						Class("inline-flex items-center gap-2 hover:text-white transition-colors"),
						components.Icon("message", 16, ""),
						g.Text("Chat with the concierge"),
					))),
					Li(Class("pt-4 text-xs font-sans text-slate-500"), g.Text(f.Copyright)),
				),
			),
		),
	)
}

// MobileStickyCTA is the bottom bar shown on small screens.
func MobileStickyCTA(open components.OpenBooking) g.Node {
	return Div(
		Class("fixed bottom-0 left-0 right-0 p-4 bg-gradient-to-t from-black/80 to-transparent md:hidden z-40"),
		A(
			open(domain.DefaultPackage, components.SourceSticky),
			Class("block text-center w-full bg-[#C05621] text-white py-4 uppercase tracking-widest font-bold shadow-2xl"),
			g.Text("Book Experience"),
		),
	)
}
