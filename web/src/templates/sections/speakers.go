package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/content"
)

// SpeakersSection lists the featured voices in document order.
func SpeakersSection(speakers []content.Speaker, images content.SectionImage) g.Node {
	return Section(
		ID("speakers"),
		Class("py-32 bg-[#1A365D] text-[#FDFBF7] relative"),
		g.If(images.Arabesque != "", Div(
			Class("absolute inset-0 opacity-10"),
			Style(`background-image: url("`+images.Arabesque+`")`),
		)),
		Div(Class("max-w-7xl mx-auto px-6 relative z-10"),
			Div(Class("text-center mb-20"),
				Span(Class("text-[#C05621] uppercase tracking-[0.2em] text-xs font-bold block mb-4"), g.Text("The Voices")),
				H2(Class("font-['Cormorant_Garamond'] text-5xl md:text-6xl text-[#FDFBF7]"), g.Text("Curated Minds")),
			),
			Div(Class("grid md:grid-cols-3 gap-8"),
				g.Map(speakers, speakerCard),
			),
		),
	)
}

func speakerCard(s content.Speaker) g.Node {
	return Div(Class("group relative"),
		Div(Class("aspect-[3/4] overflow-hidden mb-6 relative"),
			Div(Class("absolute inset-0 bg-[#C05621]/20 group-hover:bg-transparent transition-colors z-10 duration-500")),
			g.If(s.Image != "", Img(Src(s.Image), Alt(s.Name), Loading("lazy"),
				Class("w-full h-full object-cover grayscale group-hover:grayscale-0 transition-all duration-700 transform group-hover:scale-110"))),
		),
		Div(Class("border-l-2 border-[#C05621] pl-6 transition-all duration-300 group-hover:pl-8"),
			H3(Class("font-['Cormorant_Garamond'] text-3xl mb-1"), g.Text(s.Name)),
			P(Class("font-['Proza_Libre'] text-[#C05621] text-xs uppercase tracking-widest mb-3"), g.Text(s.Title)),
			g.If(s.Quote != "", P(Class("font-['Cormorant_Garamond'] text-lg italic opacity-60"), g.Text(`"`+s.Quote+`"`))),
		),
	)
}
