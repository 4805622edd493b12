package content

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// markdown escapes raw HTML in the input (WithUnsafe is not set).
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// FormatPrice renders a whole-unit price with locale digit grouping,
// e.g. "$2,495". A zero price renders as an empty string.
func FormatPrice(lang string, currency string, amount int) string {
	if amount <= 0 {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return currency + p.Sprintf("%d", amount)
}

// RenderMarkdown converts a Markdown snippet to HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
