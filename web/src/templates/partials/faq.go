package partials

import (
	"fmt"
	"log/slog"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/web/src/templates/components"
)

// FAQListID is the element swapped when an entry is toggled.
const FAQListID = "faq-list"

// FAQList renders the accordion. openIndex is -1 when every entry is
// collapsed.
func FAQList(items []content.FAQItem, openIndex int) g.Node {
	entries := make([]g.Node, 0, len(items))
	for i, item := range items {
		entries = append(entries, faqEntry(i, item, i == openIndex))
	}
	return Div(ID(FAQListID), Class("space-y-4"), g.Group(entries))
}

func faqEntry(i int, item content.FAQItem, open bool) g.Node {
	answerID := fmt.Sprintf("faq-answer-%d", i)

	answer, err := content.RenderMarkdown(item.Answer)
	if err != nil {
		slog.Warn("Failed to render FAQ answer, falling back to text", "index", i, "error", err)
		answer = ""
	}

	return Div(Class("border-b border-[#E2E8F0]"),
		Button(
			Type("button"),
			hx.Post(fmt.Sprintf("/ui/faq/%d/toggle", i)),
			hx.Target("#"+FAQListID),
			hx.Swap("outerHTML"),
			Aria("expanded", pick(open, "true", "false")),
			Aria("controls", answerID),
			Class("w-full py-6 flex justify-between items-center text-left hover:text-[#C05621] transition-colors"),
			Span(Class("font-['Proza_Libre'] text-lg text-[#2D3748]"), g.Text(item.Question)),
			components.Icon("chevron-down", 24, "transition-transform duration-300"+pick(open, " rotate-180", "")),
		),
		Div(
			ID(answerID),
			Aria("hidden", pick(open, "false", "true")),
			Class("overflow-hidden transition-all duration-500 ease-in-out "+pick(open, "max-h-96 opacity-100 mb-6", "max-h-0 opacity-0")),
			Div(
				Class("faq-answer font-['Cormorant_Garamond'] text-xl text-slate-600 pl-4 border-l-2 border-[#C05621]"),
				g.If(answer != "", g.Raw(answer)),
				g.If(answer == "", P(g.Text(item.Answer))),
			),
		),
	)
}
