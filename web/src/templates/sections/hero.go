// Package sections renders the static blocks of the landing page in the
// order the page root composes them.
package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/web/src/templates/components"
)

// NoiseOverlay is the fixed texture layer above the whole page.
func NoiseOverlay(images content.SectionImage) g.Node {
	if images.Noise == "" {
		return nil
	}
	return Div(
		Class("fixed inset-0 pointer-events-none opacity-[0.03] z-50 mix-blend-multiply"),
		Style(`background-image: url("`+images.Noise+`")`),
		Aria("hidden", "true"),
	)
}

// HeroSection is the full-height opening block.
func HeroSection(doc *content.Document, open components.OpenBooking) g.Node {
	hero := doc.Hero
	return Section(
		ID("hero"),
		Class("relative min-h-screen flex items-center justify-center overflow-hidden"),
		Div(Class("absolute inset-0 bg-[#2b1810]")),
		g.If(hero.Image != "", Div(Class("absolute inset-0 opacity-60"),
			Img(Src(hero.Image), Alt("Moroccan Architecture"), Class("w-full h-full object-cover")),
		)),
		Div(Class("absolute inset-0 bg-gradient-to-t from-[#2b1810] via-transparent to-[#1A365D]/30")),
		Div(Class("relative z-10 max-w-6xl mx-auto px-6 text-center pt-20"),
			g.If(hero.Badge != "", Div(Class("mb-8 animate-fade-in-up"),
				Span(
					Class("inline-block py-1 px-3 border border-[#FDFBF7]/30 rounded-full text-[#FDFBF7]/80 text-[10px] uppercase tracking-[0.25em] backdrop-blur-sm"),
					g.Text(hero.Badge),
				),
			)),
			H1(Class("font-['Cormorant_Garamond'] text-6xl md:text-8xl lg:text-9xl text-[#FDFBF7] leading-[0.9] mb-8 font-light italic"),
				g.Text(hero.Title), Br(),
				Span(Class("not-italic font-normal"), g.Text(hero.Subtitle)),
			),
			P(Class("font-['Proza_Libre'] text-lg md:text-xl text-[#FDFBF7]/80 max-w-2xl mx-auto mb-12 font-light leading-relaxed"),
				g.Text(hero.Lead),
			),
			Div(Class("flex flex-col md:flex-row items-center justify-center gap-8 text-[#FDFBF7] mb-16 font-['Proza_Libre'] text-sm tracking-widest"),
				Div(Class("flex items-center gap-3"),
					components.Icon("calendar", 18, "text-[#C05621]"),
					Span(g.Text(doc.Site.Dates)),
				),
				Div(Class("w-px h-4 bg-white/20 hidden md:block")),
				Div(Class("flex items-center gap-3"),
					components.Icon("map-pin", 18, "text-[#C05621]"),
					Span(g.Text(doc.Site.Location)),
				),
			),
			A(
				open(domain.DefaultPackage, components.SourceHero),
				Class("group relative inline-block px-10 py-5 bg-[#C05621] text-[#FDFBF7] overflow-hidden transition-all hover:shadow-[0_0_40px_-10px_rgba(192,86,33,0.5)]"),
				Span(Class("relative z-10 font-['Proza_Libre'] text-sm tracking-[0.2em] uppercase flex items-center gap-4"),
					g.Text(hero.CTALabel),
					components.Icon("move-right", 24, "group-hover:translate-x-1 transition-transform"),
				),
				Div(Class("absolute inset-0 bg-[#A04519] transform scale-x-0 group-hover:scale-x-100 transition-transform origin-left duration-500")),
			),
		),
	)
}
