package view_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/view"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	var buf bytes.Buffer
	err := view.AdaptGomponentToTempl(Section(ID("faq"), g.Text("salon"))).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, `<section id="faq">salon</section>`, buf.String())

	buf.Reset()
	require.NoError(t, view.AdaptGomponentToTempl(nil).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())
}
