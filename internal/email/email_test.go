package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/testutils"
)

func TestNewSender(t *testing.T) {
	t.Run("log provider", func(t *testing.T) {
		cfg := testutils.ConfigForTests(t)
		sender, err := NewSender(cfg)
		require.NoError(t, err)
		assert.IsType(t, &LogSender{}, sender)
	})

	t.Run("resend without key", func(t *testing.T) {
		testutils.ConfigForTests(t)
		t.Setenv("EMAIL_PROVIDER", "resend")
		t.Setenv("EMAIL_API_KEY", "")
		cfg, err := config.New()
		require.NoError(t, err)
		_, err = NewSender(cfg)
		assert.ErrorContains(t, err, "EMAIL_API_KEY")
	})

	t.Run("provider name is case-insensitive", func(t *testing.T) {
		testutils.ConfigForTests(t)
		t.Setenv("EMAIL_PROVIDER", "Resend")
		t.Setenv("EMAIL_API_KEY", "re_test")
		cfg, err := config.New()
		require.NoError(t, err)
		sender, err := NewSender(cfg)
		require.NoError(t, err)
		assert.IsType(t, &ResendSender{}, sender)
	})

	t.Run("unknown provider", func(t *testing.T) {
		testutils.ConfigForTests(t)
		t.Setenv("EMAIL_PROVIDER", "carrier-pigeon")
		cfg, err := config.New()
		require.NoError(t, err)
		_, err = NewSender(cfg)
		assert.ErrorContains(t, err, "unknown email provider")
	})
}

func TestResendSender(t *testing.T) {
	var got resendPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	s := NewResendSender("re_test", "Salon <concierge@example.com>")
	s.endpoint = srv.URL

	err := s.Send(context.Background(), "guest@example.com", "Hello", "<p>Hi</p>")
	require.NoError(t, err)
	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, "guest@example.com", got.To)
	assert.Equal(t, "Salon <concierge@example.com>", got.From)
	assert.Equal(t, "<p>Hi</p>", got.HTML)
}

func TestResendSenderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"name":"validation_error","message":"Invalid to field"}`))
	}))
	defer srv.Close()

	s := NewResendSender("re_test", "Salon <concierge@example.com>")
	s.endpoint = srv.URL

	err := s.Send(context.Background(), "nope", "Hello", "<p>Hi</p>")
	assert.ErrorContains(t, err, "Invalid to field")
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, NewLogSender("Salon").Send(context.Background(), "a@b.c", "s", "b"))
}
