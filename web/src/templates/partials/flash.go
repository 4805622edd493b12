package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/view"
)

// NoticesID is the container for flash messages and pushed notices.
const NoticesID = "notices"

// Notices renders flash messages left by a full-page redirect.
func Notices(flash view.FlashData) g.Node {
	return Div(
		ID(NoticesID),
		Aria("live", "polite"),
		Class("fixed top-24 inset-x-0 z-[70] flex flex-col items-center gap-2 px-4 pointer-events-none"),
		g.Map(flash.Success, func(msg string) g.Node { return notice(msg, false) }),
		g.Map(flash.Error, func(msg string) g.Node { return notice(msg, true) }),
	)
}

// ContentUpdated is pushed to every open page after the content document
// is reloaded.
func ContentUpdated() g.Node {
	return Div(
		ID(NoticesID),
		g.Attr("hx-swap-oob", "beforeend"),
		Div(
			Class("pointer-events-auto max-w-md w-full bg-[#1A365D] text-[#FDFBF7] px-6 py-4 shadow-2xl text-sm font-['Proza_Libre'] flex justify-between gap-4"),
			Span(g.Text("The programme has been updated.")),
			A(Href("/"), Class("underline underline-offset-4"), g.Text("Refresh")),
		),
	)
}

func notice(msg string, isError bool) g.Node {
	return Div(
		Role(pick(isError, "alert", "status")),
		Class("pointer-events-auto max-w-md w-full px-6 py-4 shadow-2xl text-sm font-['Proza_Libre'] "+
			pick(isError, "bg-[#9B2C2C] text-white", "bg-[#C05621] text-[#FDFBF7]")),
		g.Text(msg),
	)
}
