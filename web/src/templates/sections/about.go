package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/web/src/templates/components"
)

// AboutSection introduces the gathering.
func AboutSection(about content.About) g.Node {
	return Section(
		ID("about"),
		Class("py-32 bg-[#FDFBF7] text-[#2D3748] overflow-hidden relative"),
		Div(Class("absolute top-0 right-0 w-1/3 h-full bg-[#EADDCD]/20 -skew-x-12 transform translate-x-20")),
		Div(Class("max-w-7xl mx-auto px-6 relative"),
			Div(Class("grid md:grid-cols-2 gap-20 items-center"),
				Div(Class("relative"),
					Div(Class("aspect-[3/4] overflow-hidden rounded-t-[10rem] relative z-10 shadow-2xl"),
						g.If(about.Image != "", Img(Src(about.Image), Alt("Portrait of woman"), Loading("lazy"),
							Class("w-full h-full object-cover hover:scale-105 transition-transform duration-1000"))),
					),
					Div(Class("absolute -bottom-10 -left-10 w-40 h-40 bg-[#1A365D] rounded-full mix-blend-multiply opacity-80 z-0")),
					Div(Class("absolute top-20 -right-10 w-20 h-20 border border-[#C05621] rounded-full z-20")),
				),
				Div(
					Div(Class("flex items-center gap-4 mb-6"),
						Span(Class("h-px w-12 bg-[#C05621]")),
						Span(Class("text-[#C05621] uppercase tracking-[0.2em] text-xs font-bold"), g.Text(about.Eyebrow)),
					),
					H2(Class("font-['Cormorant_Garamond'] text-5xl md:text-6xl text-[#1A365D] mb-8 leading-tight"),
						g.Text(about.Title), Br(),
						Span(Class("italic text-[#C05621]"), g.Text(about.Highlight)),
					),
					g.Map(about.Paragraphs, func(p string) g.Node {
						return P(Class("font-['Proza_Libre'] text-lg leading-relaxed mb-6 text-slate-600 last-of-type:mb-10"), g.Text(p))
					}),
					g.If(about.LinkLabel != "", A(
						Href(about.LinkHref),
						Class("inline-flex items-center gap-2 text-[#1A365D] font-bold border-b border-[#1A365D] pb-1 hover:text-[#C05621] hover:border-[#C05621] transition-colors"),
						g.Text(about.LinkLabel),
						components.Icon("arrow-right", 16, ""),
					)),
				),
			),
		),
	)
}

// VisualBreak is the full-width quote over a fixed background image.
func VisualBreak(quote string, images content.SectionImage) g.Node {
	if quote == "" {
		return nil
	}
	return Section(
		Class("h-[60vh] relative bg-fixed bg-center bg-cover"),
		g.If(images.Break != "", Style(`background-image: url("`+images.Break+`")`)),
		Div(Class("absolute inset-0 bg-black/40 flex items-center justify-center"),
			Div(Class("text-center text-[#FDFBF7] max-w-2xl px-6 backdrop-blur-sm py-12 border border-white/20"),
				P(Class("font-['Cormorant_Garamond'] text-3xl md:text-5xl italic leading-relaxed"),
					g.Text(`"`+quote+`"`),
				),
			),
		),
	)
}
