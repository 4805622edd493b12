package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/view"
	"github.com/nfrund/salon/web/src/templates/partials"
)

const (
	htmxURL       = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSURL     = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"
	tailwindURL   = "https://cdn.tailwindcss.com"
	stylesheetURL = "/static/css/salon.css"
)

// PageMeta describes the document head.
type PageMeta struct {
	Title             string
	SiteName          string
	Description       string
	Language          string
	FontStylesheetURL string
}

// Page wraps page content in the HTML document. The font stylesheet is
// linked exactly once, and the body connects to the push channel.
func Page(meta PageMeta, flash view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := meta.Language
		if lang == "" {
			lang = "en"
		}

		body := g.NodeFunc(func(w io.Writer) error {
			if content == nil {
				return nil
			}
			return content.Render(ctx, w)
		})

		return Doctype(
			HTML(
				Lang(lang),
				Head(
					Meta(Charset("utf-8")),
					Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
					TitleEl(g.Text(CalculateTitle(meta.Title, meta.SiteName))),
					g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
					g.If(meta.FontStylesheetURL != "", Link(Rel("stylesheet"), Href(meta.FontStylesheetURL))),
					Script(Src(tailwindURL)),
					Link(Rel("stylesheet"), Href(stylesheetURL)),
					Script(Src(htmxURL)),
					Script(Src(htmxWSURL)),
				),
				Body(
					hx.Ext("ws"),
					g.Attr("ws-connect", "/ws"),
					partials.Notices(flash),
					body,
				),
			),
		).Render(w)
	})
}
