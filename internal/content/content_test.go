package content_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
)

const minimalDocument = `
site:
  name: Test Salon
nav:
  - label: FAQ
    href: "#faq"
hero:
  title: Hello
  cta_label: Reserve
about:
  title: About
packages:
  - tier: standard
    name: Pass
    price: 1200
    currency: "$"
footer:
  blurb: bye
`

func TestDefault(t *testing.T) {
	doc, err := content.Default()
	require.NoError(t, err)

	assert.Equal(t, "DIASPORA SALON", doc.Site.Name)
	assert.NotEmpty(t, doc.Site.FontStylesheetURL)
	assert.Len(t, doc.Speakers, 3)
	assert.Len(t, doc.FAQ, 3)

	prestige, ok := doc.Package(domain.PackagePrestige)
	require.True(t, ok)
	assert.True(t, prestige.Featured)
	assert.Equal(t, 3995, prestige.Price)

	for _, tier := range domain.PackageTypes() {
		_, ok := doc.Package(tier)
		assert.True(t, ok, "default document is missing tier %s", tier)
	}
	assert.NotEmpty(t, doc.Footer.ChatDeepLink)
	assert.False(t, doc.ItineraryExternal())
}

func TestParse(t *testing.T) {
	t.Run("minimal document", func(t *testing.T) {
		doc, err := content.Parse("test.yaml", []byte(minimalDocument))
		require.NoError(t, err)
		assert.Equal(t, "Test Salon", doc.Site.Name)
	})

	t.Run("syntax error reports line", func(t *testing.T) {
		_, err := content.Parse("broken.yaml", []byte("site:\n  name: [unclosed\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, content.ErrInvalidDocument))

		var perr *content.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "broken.yaml", perr.Source)
		assert.Positive(t, perr.Line)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := content.Parse("empty.yaml", []byte("quote: hi\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, content.ErrInvalidDocument)
		assert.Contains(t, err.Error(), "site")
	})

	t.Run("unknown tier", func(t *testing.T) {
		doc := minimalDocument + "  - tier: platinum\n    name: Nope\n"
		_, err := content.Parse("tier.yaml", []byte(insertPackage(doc)))
		require.Error(t, err)
		assert.ErrorIs(t, err, content.ErrInvalidDocument)
	})

	t.Run("duplicate tier", func(t *testing.T) {
		doc := insertPackage(minimalDocument + "  - tier: standard\n    name: Again\n")
		_, err := content.Parse("dup.yaml", []byte(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already used")
	})

	t.Run("external itinerary needs a url", func(t *testing.T) {
		doc := minimalDocument + "itinerary:\n  mode: external\n"
		_, err := content.Parse("itin.yaml", []byte(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "external_url")
	})
}

// insertPackage moves the trailing package entries appended to the minimal
// document back under the packages key.
func insertPackage(doc string) string {
	const footer = "footer:\n  blurb: bye\n"
	idx := len(minimalDocument) - len(footer)
	extra := doc[len(minimalDocument):]
	return minimalDocument[:idx] + extra + footer
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/content/site.yaml", []byte(minimalDocument), 0o644))

	doc, err := content.Load(fs, "/content/site.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Pass", doc.Packages[0].Name)

	_, err = content.Load(fs, "/content/missing.yaml")
	assert.Error(t, err)
}

func TestStoreReload(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site.yaml", []byte(minimalDocument), 0o644))

	store, err := content.NewStore(fs, "/site.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Test Salon", store.Current().Site.Name)

	var reloads atomic.Int32
	store.OnReload(func(*content.Document) { reloads.Add(1) })

	updated := []byte(minimalDocument + "quote: fresh\n")
	require.NoError(t, afero.WriteFile(fs, "/site.yaml", updated, 0o644))
	require.NoError(t, store.Reload())
	assert.Equal(t, "fresh", store.Current().Quote)
	assert.Equal(t, int32(1), reloads.Load())

	t.Run("failed reload keeps previous document", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/site.yaml", []byte("site: ["), 0o644))
		err := store.Reload()
		require.Error(t, err)
		assert.Equal(t, "fresh", store.Current().Quote)
		assert.Equal(t, int32(1), reloads.Load())
	})
}

func TestStoreWatch(t *testing.T) {
	fs := afero.NewOsFs()
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, afero.WriteFile(fs, path, []byte(minimalDocument), 0o644))

	store, err := content.NewStore(fs, path)
	require.NoError(t, err)

	var lastQuote atomic.Value
	store.OnReload(func(doc *content.Document) { lastQuote.Store(doc.Quote) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	// The watcher starts asynchronously, so the file is rewritten until a
	// change is picked up.
	rewriteUntil := func(body, quote string) {
		t.Helper()
		require.Eventually(t, func() bool {
			if store.Current().Quote == quote {
				return true
			}
			_ = afero.WriteFile(fs, path, []byte(body), 0o644)
			return false
		}, 5*time.Second, 50*time.Millisecond)
	}

	rewriteUntil(minimalDocument+"quote: first edit\n", "first edit")
	assert.Eventually(t, func() bool { return lastQuote.Load() == "first edit" }, time.Second, 10*time.Millisecond)

	t.Run("broken edit keeps previous document", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, path, []byte("site: ["), 0o644))
		assert.Never(t, func() bool { return store.Current().Quote != "first edit" }, 300*time.Millisecond, 20*time.Millisecond)
		assert.Equal(t, "first edit", lastQuote.Load())

		rewriteUntil(minimalDocument+"quote: second edit\n", "second edit")
	})
}

func TestStoreDefault(t *testing.T) {
	store, err := content.NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, "DIASPORA SALON", store.Current().Site.Name)
	assert.NoError(t, store.Reload())
	assert.NoError(t, store.Watch(context.Background()))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$2,495", content.FormatPrice("en", "$", 2495))
	assert.Equal(t, "$3,995", content.FormatPrice("", "$", 3995))
	assert.Equal(t, "€950", content.FormatPrice("en", "€", 950))
	assert.Equal(t, "", content.FormatPrice("en", "$", 0))
}

func TestRenderMarkdown(t *testing.T) {
	html, err := content.RenderMarkdown("Included in **Prestige** only.")
	require.NoError(t, err)
	assert.Equal(t, "<p>Included in <strong>Prestige</strong> only.</p>", html)

	html, err = content.RenderMarkdown("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
