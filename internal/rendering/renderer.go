// Package rendering turns gomponents nodes and templ components into HTML
// for full pages, htmx fragments and websocket pushes.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders the site's components.
type Renderer interface {
	// RenderComponent renders to bytes, for pushes over the websocket.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a complete HTTP response: a full page or an htmx
	// fragment.
	RenderPage(c echo.Context, status int, component any) error
}

// HTMLRenderer renders templ components and anything with a
// Render(io.Writer) error method, such as gomponents.Node.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

type node interface {
	Render(w io.Writer) error
}

func (r *HTMLRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

// RenderComponent implements Renderer.
func (r *HTMLRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. The body is rendered before the status is
// written, so a failing component still yields a clean 500. Fragments carry
// per-visitor state and are never cached.
func (r *HTMLRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := r.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}

	h := c.Response().Header()
	h.Add(echo.HeaderVary, "HX-Request")
	if c.Request().Header.Get("HX-Request") == "true" {
		h.Set("Cache-Control", "no-store")
	}
	return c.HTMLBlob(status, body)
}

var _ Renderer = (*HTMLRenderer)(nil)
