package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/web/src/templates/components"
)

// PackagesSection shows the priced tiers, the fellowship call-out and the
// invited-guest path. Every Reserve control opens the modal with its own
// tier.
func PackagesSection(doc *content.Document, open components.OpenBooking) g.Node {
	var priced []content.Package
	for _, p := range doc.Packages {
		if p.Price > 0 {
			priced = append(priced, p)
		}
	}
	invited, hasInvited := doc.Package(domain.PackageInvited)

	return Section(
		ID("packages"),
		Class("py-32 bg-[#EADDCD]"),
		Div(Class("max-w-7xl mx-auto px-6"),
			Div(Class("grid lg:grid-cols-12 gap-12"),
				Div(Class("lg:col-span-4"),
					H2(Class("font-['Cormorant_Garamond'] text-5xl text-[#2D3748] mb-8 leading-tight"),
						g.Text("Define Your "), Br(),
						Span(Class("text-[#C05621] italic"), g.Text("Participation")),
					),
					P(Class("text-slate-700 mb-8 font-['Proza_Libre']"),
						g.Text("Whether you are a student seeking mentorship, a cultural enthusiast, or an invited diplomat, there is a path for you to join the circle."),
					),
					fellowshipBlock(doc.Fellowship, open),
				),
				Div(Class("lg:col-span-8 grid md:grid-cols-2 gap-6"),
					g.Map(priced, func(p content.Package) g.Node {
						return packageCard(p, doc.Site.Language, open)
					}),
					g.If(hasInvited, invitedCard(invited, doc.Footer.ChatDeepLink, open)),
				),
			),
		),
	)
}

func fellowshipBlock(f content.Fellowship, open components.OpenBooking) g.Node {
	if f.Title == "" {
		return nil
	}
	label := f.CTALabel
	if label == "" {
		label = "Apply for Fellowship"
	}
	return Div(Class("p-8 bg-[#C05621] text-[#FDFBF7]"),
		H3(Class("font-['Cormorant_Garamond'] text-2xl italic mb-2"), g.Text(f.Title)),
		P(Class("text-sm opacity-90 mb-6"), g.Text(f.Body)),
		A(
			open(domain.PackageFellowship, components.SourceFellowship),
			Class("underline decoration-1 underline-offset-4 hover:opacity-80"),
			g.Text(label),
		),
	)
}

func packageCard(p content.Package, lang string, open components.OpenBooking) g.Node {
	featured := p.Featured
	label := p.CTALabel
	if label == "" {
		label = "Reserve"
	}

	return Div(
		g.Attr("data-tier", string(p.Tier)),
		Class(choose(featured,
			"bg-[#1A365D] text-[#FDFBF7] p-10 shadow-2xl relative overflow-hidden transform md:-mt-8",
			"bg-[#FDFBF7] p-10 shadow-xl transition-transform hover:-translate-y-2 relative overflow-hidden group",
		)),
		g.If(featured, Div(Class("absolute top-0 left-0 w-full h-1 bg-gradient-to-r from-[#C05621] to-[#D69E2E]"))),
		g.If(!featured, Div(Class("absolute top-0 right-0 w-24 h-24 bg-[#EADDCD] rounded-bl-full -mr-10 -mt-10 transition-transform group-hover:scale-150"))),
		H3(Class("font-['Proza_Libre'] uppercase tracking-widest text-sm mb-4 "+choose(featured, "text-[#C05621]", "text-slate-500")),
			g.Text(p.Name),
		),
		Div(Class("font-['Cormorant_Garamond'] text-5xl mb-6 "+choose(featured, "text-[#FDFBF7]", "text-[#2D3748]")),
			g.Text(content.FormatPrice(lang, p.Currency, p.Price)),
		),
		Ul(Class("space-y-4 mb-10 font-['Proza_Libre'] text-sm "+choose(featured, "text-white/80", "text-slate-600")),
			g.Map(p.Features, func(f string) g.Node {
				return Li(Class("flex items-center gap-3"),
					components.Icon("star", 14, choose(featured, "text-[#D69E2E]", "text-[#C05621]")),
					g.Text(f),
				)
			}),
		),
		A(
			open(p.Tier, components.SourcePackage),
			Class("block text-center w-full py-4 uppercase tracking-widest text-xs transition-colors "+choose(featured,
				"bg-[#C05621] text-[#FDFBF7] hover:bg-[#D69E2E] shadow-lg",
				"border border-[#2D3748] text-[#2D3748] hover:bg-[#2D3748] hover:text-[#FDFBF7]",
			)),
			g.Text(label),
		),
		g.If(p.CheckoutURL != "", A(
			Href(p.CheckoutURL),
			Target("_blank"),
			Rel("noopener"),
			Class("block text-center mt-4 text-xs uppercase tracking-widest underline underline-offset-4 "+choose(featured, "text-white/70", "text-slate-500")),
			g.Text("Pay securely with VOYA"),
		)),
	)
}

func invitedCard(p content.Package, chatLink string, open components.OpenBooking) g.Node {
	label := p.CTALabel
	if label == "" {
		label = "Confirm Invitation"
	}
	return Div(
		g.Attr("data-tier", string(p.Tier)),
		Class("md:col-span-2 bg-[#FDFBF7]/60 border border-[#2D3748]/10 p-8 flex flex-col md:flex-row md:items-center justify-between gap-6"),
		Div(
			H3(Class("font-['Cormorant_Garamond'] text-3xl text-[#2D3748] mb-1"), g.Text(p.Name)),
			P(Class("font-['Proza_Libre'] text-sm text-slate-600"), g.Text("Diplomats and partners holding an invitation confirm directly with the concierge.")),
		),
		Div(Class("flex flex-col sm:flex-row gap-3"),
			A(
				open(domain.PackageInvited, components.SourcePackage),
				Class("px-8 py-3 border border-[#2D3748] text-[#2D3748] uppercase tracking-widest text-xs hover:bg-[#2D3748] hover:text-[#FDFBF7] transition-colors text-center"),
				g.Text(label),
			),
			g.If(chatLink != "", A(
				Href(chatLink),
				Target("_blank"),
				Rel("noopener"),
				Class("px-8 py-3 bg-[#1A365D] text-[#FDFBF7] uppercase tracking-widest text-xs flex items-center justify-center gap-2"),
				components.Icon("message", 14, ""),
				g.Text("Message the Concierge"),
			)),
		),
	)
}

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
