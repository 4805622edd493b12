// Package partials renders the fragments that htmx swaps independently:
// navigation, FAQ list, booking modal and notices.
package partials

import (
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/ui"
	"github.com/nfrund/salon/web/src/templates/components"
)

// NavID is the element swapped by scroll and menu events.
const NavID = "site-nav"

// NavState is what the navigation bar needs from the visitor.
type NavState struct {
	Mode     ui.NavMode
	MenuOpen bool
}

// NavBar renders the fixed navigation bar. When oob is set the fragment is
// marked for an out-of-band swap.
func NavBar(doc *content.Document, st NavState, open components.OpenBooking, oob bool) g.Node {
	solid := st.Mode == ui.NavSolid

	return Nav(
		ID(NavID),
		g.If(oob, hx.SwapOOB("true")),
		g.Attr("data-mode", string(st.Mode)),
		hx.Post("/ui/nav/scroll"),
		hx.Trigger("scroll from:window throttle:150ms"),
		hx.Vals("js:{offset: window.scrollY}"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		Class(pick(solid,
			"fixed w-full z-40 transition-all duration-500 bg-[#FDFBF7]/90 backdrop-blur-md shadow-sm py-4",
			"fixed w-full z-40 transition-all duration-500 bg-transparent py-6",
		)),
		Div(Class("max-w-7xl mx-auto px-6 lg:px-12"),
			Div(Class("flex justify-between items-center"),
				A(Href("#"), Class("flex-shrink-0 relative group cursor-pointer"),
					H1(
						Class("text-2xl font-['Cormorant_Garamond'] font-semibold tracking-wide transition-colors "+pick(solid, "text-[#C05621]", "text-[#FDFBF7]")),
						g.Text(doc.Site.Name),
					),
					Span(
						Class("text-[10px] uppercase tracking-[0.2em] block "+pick(solid, "text-slate-600", "text-white/80")),
						g.Text(doc.Site.Tagline),
					),
				),
				Div(Class("hidden md:flex items-center space-x-12"),
					g.Map(doc.Nav, func(item content.NavItem) g.Node {
						return A(
							Href(item.Href),
							g.If(item.External, g.Group([]g.Node{Target("_blank"), Rel("noopener")})),
							Class("font-['Proza_Libre'] text-sm tracking-widest uppercase hover:opacity-70 transition-all "+pick(solid, "text-slate-800", "text-white")),
							g.Text(item.Label),
						)
					}),
					A(
						open(domain.DefaultPackage, components.SourceNav),
						Class("px-8 py-3 rounded-none text-xs font-bold tracking-[0.2em] uppercase transition-all duration-300 border "+pick(solid,
							"border-[#C05621] text-[#C05621] hover:bg-[#C05621] hover:text-white",
							"border-white text-white hover:bg-white hover:text-[#C05621]",
						)),
						g.Text("Reserve"),
					),
				),
				Button(
					Type("button"),
					hx.Post("/ui/menu/toggle"),
					hx.Target("#"+NavID),
					hx.Swap("outerHTML"),
					Aria("label", pick(st.MenuOpen, "Close menu", "Open menu")),
					Aria("expanded", pick(st.MenuOpen, "true", "false")),
					Class("md:hidden "+pick(solid, "text-slate-900", "text-white")),
					components.Icon(pick(st.MenuOpen, "x", "menu"), 24, ""),
				),
			),
		),
		g.If(st.MenuOpen, mobileMenu(doc, open)),
	)
}

func mobileMenu(doc *content.Document, open components.OpenBooking) g.Node {
	return Div(
		ID("mobile-menu"),
		Class("absolute top-0 left-0 w-full h-screen bg-[#1A365D] text-[#FDFBF7] flex flex-col justify-center items-center gap-8 z-50"),
		Button(
			Type("button"),
			hx.Post("/ui/menu/close"),
			hx.Target("#"+NavID),
			hx.Swap("outerHTML"),
			Aria("label", "Close menu"),
			Class("absolute top-8 right-8"),
			components.Icon("x", 32, ""),
		),
		Ul(Class("flex flex-col items-center gap-8"),
			g.Map(doc.Nav, func(item content.NavItem) g.Node {
				return mobileLink(item)
			}),
		),
		A(
			open(domain.DefaultPackage, components.SourceMobileMenu),
			Class("mt-4 px-10 py-4 bg-[#C05621] text-[#FDFBF7] uppercase tracking-[0.2em] text-xs font-bold"),
			g.Text("Reserve"),
		),
	)
}

// mobileLink closes the menu whenever its link is clicked. The request sits
// on the list item so the anchor keeps its own navigation: htmx would cancel
// a click on an external or "#" anchor. In-page anchors scroll into view
// after the swap.
func mobileLink(item content.NavItem) g.Node {
	swap := "outerHTML"
	if strings.HasPrefix(item.Href, "#") && len(item.Href) > 1 && !item.External {
		swap += " show:" + item.Href + ":top"
	}
	return Li(
		hx.Post("/ui/menu/close"),
		hx.Trigger("click"),
		hx.Target("#"+NavID),
		hx.Swap(swap),
		A(
			Href(item.Href),
			Class("font-['Cormorant_Garamond'] text-4xl italic"),
			g.If(item.External, g.Group([]g.Node{Target("_blank"), Rel("noopener")})),
			g.Text(item.Label),
		),
	)
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
