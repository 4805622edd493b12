package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/email"
	"github.com/nfrund/salon/internal/hub"
	"github.com/nfrund/salon/internal/inquiry"
	"github.com/nfrund/salon/internal/pubsub"
	"github.com/nfrund/salon/internal/testutils"
	"github.com/nfrund/salon/internal/visitor"
)

func TestContainerProvidesCoreServices(t *testing.T) {
	i := NewContainer(testutils.ConfigForTests(t))
	t.Cleanup(func() { i.Shutdown() })

	store := do.MustInvoke[*content.Store](i)
	assert.Equal(t, "DIASPORA SALON", store.Current().Site.Name)

	pub := do.MustInvoke[pubsub.Publisher](i)
	sub := do.MustInvoke[pubsub.Subscriber](i)
	assert.Same(t, do.MustInvoke[*pubsub.WatermillBridge](i), pub)
	assert.Same(t, do.MustInvoke[*pubsub.WatermillBridge](i), sub)

	_, err := do.Invoke[email.Sender](i)
	assert.NoError(t, err)
	_, err = do.Invoke[*inquiry.Service](i)
	assert.NoError(t, err)
}

func TestModulesRegister(t *testing.T) {
	i := NewContainer(testutils.ConfigForTests(t))
	t.Cleanup(func() { i.Shutdown() })

	for _, m := range NewModules() {
		require.NoError(t, m.Register(i), m.Name())
	}
	_, err := do.Invoke[*visitor.Store](i)
	assert.NoError(t, err)
}

func TestStartAnnouncesContentReload(t *testing.T) {
	doc, err := content.Default()
	require.NoError(t, err)
	data, err := yaml.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	testutils.ConfigForTests(t)
	t.Setenv("CONTENT_PATH", path)
	cfg, err := config.New()
	require.NoError(t, err)

	i := NewContainer(cfg)
	t.Cleanup(func() { i.Shutdown() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Start(ctx, i))

	sub := hub.NewSubscriber("visitor-1")
	do.MustInvoke[*hub.Hub](i).Register(sub)

	require.NoError(t, do.MustInvoke[*content.Store](i).Reload())

	select {
	case msg := <-sub.Send:
		assert.Contains(t, string(msg), "The programme has been updated.")
		assert.Contains(t, string(msg), `hx-swap-oob="beforeend"`)
	case <-time.After(time.Second):
		t.Fatal("no reload notice broadcast")
	}
}
