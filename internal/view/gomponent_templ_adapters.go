package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// AdaptGomponentToTempl lets a gomponents tree render as the body of the
// templ base layout. A nil node renders nothing.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}
