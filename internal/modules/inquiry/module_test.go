package inquiry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/email"
	"github.com/nfrund/salon/internal/handlers"
	intake "github.com/nfrund/salon/internal/inquiry"
	"github.com/nfrund/salon/internal/pubsub"
	"github.com/nfrund/salon/internal/testutils"
)

const journalPath = "/var/lib/salon/inquiries.jsonl"

type recordingSender struct {
	mu       sync.Mutex
	subjects []string
}

func (r *recordingSender) Send(_ context.Context, _, subject, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subjects = append(r.subjects, subject)
	return nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subjects)
}

type brokenPublisher struct{}

func (brokenPublisher) Publish(context.Context, pubsub.Message) error { return errors.New("bus down") }
func (brokenPublisher) Close() error                                  { return nil }

func bootModule(t *testing.T, pub pubsub.Publisher) (*echo.Echo, afero.Fs, *recordingSender) {
	t.Helper()
	testutils.ConfigForTests(t)
	t.Setenv("INQUIRY_JOURNAL_PATH", journalPath)
	cfg, err := config.New()
	require.NoError(t, err)

	bridge := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })
	if pub == nil {
		pub = bridge
	}

	fs := afero.NewMemMapFs()
	sender := &recordingSender{}

	i := do.New()
	do.ProvideValue[config.Provider](i, cfg)
	do.ProvideValue[afero.Fs](i, fs)
	do.ProvideValue[pubsub.Subscriber](i, bridge)
	do.ProvideValue[email.Sender](i, sender)
	do.ProvideValue(i, intake.NewService(pub, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := New()
	require.NoError(t, m.Register(i))
	e := echo.New()
	require.NoError(t, m.Boot(ctx, e.Group(""), i))
	return e, fs, sender
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateInquiry(t *testing.T) {
	e, fs, sender := bootModule(t, nil)

	rec := post(e, `{"name":"Ada Lovelace","email":"ada@example.com","phone":"+44 20 7946 0000","package_type":"Prestige","message":"Two seats"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var accepted handlers.InquiryAccepted
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))
	assert.NotEmpty(t, accepted.Reference)

	require.Eventually(t, func() bool {
		entries, err := intake.ReadJournal(fs, journalPath)
		return err == nil && len(entries) == 1 && sender.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	entries, err := intake.ReadJournal(fs, journalPath)
	require.NoError(t, err)
	assert.Equal(t, accepted.Reference, entries[0].Reference)
	assert.Equal(t, intake.SourceAPI, entries[0].Source)
	assert.Equal(t, "prestige", string(entries[0].PackageType))
}

func TestCreateInquiryRejections(t *testing.T) {
	e, _, _ := bootModule(t, nil)

	rec := post(e, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(e, `{"name":"Ada","email":"not-an-email","phone":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Code)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "phone")
}

func TestCreateInquiryUnknownPackage(t *testing.T) {
	e, _, _ := bootModule(t, nil)

	rec := post(e, `{"name":"Ada","email":"ada@example.com","phone":"1","package_type":"platinum"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "package_type")
}

func TestCreateInquiryBusDown(t *testing.T) {
	e, _, _ := bootModule(t, brokenPublisher{})

	rec := post(e, `{"name":"Ada","email":"ada@example.com","phone":"1"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "submission_failed")
}
