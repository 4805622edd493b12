package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/salon/internal/booking"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSubmitter implements booking.Submitter for testing.
type recordingSubmitter struct {
	mu        sync.Mutex
	inquiries []domain.BookingInquiry
	err       error
	ctxs      []context.Context
}

func (r *recordingSubmitter) Submit(ctx context.Context, inquiry domain.BookingInquiry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries = append(r.inquiries, inquiry)
	r.ctxs = append(r.ctxs, ctx)
	if r.err != nil {
		return "", r.err
	}
	return "ref-1", nil
}

func (r *recordingSubmitter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inquiries)
}

type harness struct {
	ctrl      *booking.Controller
	clock     *testutils.ManualScheduler
	submitter *recordingSubmitter
	changes   []booking.State
	mu        sync.Mutex
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock:     testutils.NewManualScheduler(),
		submitter: &recordingSubmitter{},
	}
	h.ctrl = booking.NewController(booking.Options{
		Scheduler: h.clock,
		Submitter: h.submitter,
		OnChange: func(st booking.State) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.changes = append(h.changes, st)
		},
	})
	return h
}

func (h *harness) changeCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.changes)
}

func fillRequired(t *testing.T, c *booking.Controller) {
	t.Helper()
	require.NoError(t, c.SetField(booking.FieldName, "Ama Mensah"))
	require.NoError(t, c.SetField(booking.FieldEmail, "ama@example.com"))
	require.NoError(t, c.SetField(booking.FieldPhone, "+233 20 000 0000"))
}

func TestOpenPresetsPackage(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.ctrl.Open(domain.PackagePrestige))
	st := h.ctrl.State()

	assert.True(t, st.Open)
	assert.Equal(t, booking.StatusIdle, st.Status)
	assert.Equal(t, domain.PackagePrestige, st.Form.PackageType)
	assert.Empty(t, st.Form.Name)
	assert.Empty(t, st.Form.Email)
	assert.Empty(t, st.Form.Phone)
	assert.Empty(t, st.Form.Message)
}

func TestOpenDefaultsToStandard(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Open(""))
	assert.Equal(t, domain.PackageStandard, h.ctrl.State().Form.PackageType)
}

func TestOpenRejectsUnknownPackage(t *testing.T) {
	h := newHarness(t)
	err := h.ctrl.Open("platinum")
	assert.ErrorIs(t, err, domain.ErrUnknownPackage)
	assert.False(t, h.ctrl.IsOpen())
}

func TestSetField(t *testing.T) {
	h := newHarness(t)

	t.Run("closed modal rejects edits", func(t *testing.T) {
		assert.ErrorIs(t, h.ctrl.SetField(booking.FieldName, "x"), domain.ErrModalClosed)
	})

	require.NoError(t, h.ctrl.Open(domain.PackageStandard))

	t.Run("updates exactly one field", func(t *testing.T) {
		require.NoError(t, h.ctrl.SetField(booking.FieldEmail, "ama@example.com"))
		st := h.ctrl.State()
		assert.Equal(t, "ama@example.com", st.Form.Email)
		assert.Empty(t, st.Form.Name)
		assert.Empty(t, st.Form.Phone)
		assert.Equal(t, domain.PackageStandard, st.Form.PackageType)
	})

	t.Run("package must stay a known tier", func(t *testing.T) {
		assert.ErrorIs(t, h.ctrl.SetField(booking.FieldPackage, ""), domain.ErrUnknownPackage)
		assert.Equal(t, domain.PackageStandard, h.ctrl.State().Form.PackageType)

		require.NoError(t, h.ctrl.SetField(booking.FieldPackage, "fellowship"))
		assert.Equal(t, domain.PackageFellowship, h.ctrl.State().Form.PackageType)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		assert.ErrorIs(t, h.ctrl.SetField(booking.Field("age"), "30"), domain.ErrInvalidField)
	})
}

func TestSubmitWithMissingRequiredFieldsStaysIdle(t *testing.T) {
	cases := map[string]func(c *booking.Controller){
		"all empty":     func(c *booking.Controller) {},
		"missing name":  func(c *booking.Controller) { _ = c.SetField(booking.FieldName, "") },
		"missing email": func(c *booking.Controller) { _ = c.SetField(booking.FieldEmail, "  ") },
		"missing phone": func(c *booking.Controller) { _ = c.SetField(booking.FieldPhone, "") },
		"bad email":     func(c *booking.Controller) { _ = c.SetField(booking.FieldEmail, "ama-at-example") },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			require.NoError(t, h.ctrl.Open(domain.PackageStandard))
			if name != "all empty" {
				fillRequired(t, h.ctrl)
			}
			mutate(h.ctrl)

			err := h.ctrl.Submit()
			assert.ErrorIs(t, err, domain.ErrIncompleteForm)

			st := h.ctrl.State()
			assert.Equal(t, booking.StatusIdle, st.Status)
			assert.NotEmpty(t, st.FieldErrors)
			assert.Equal(t, 0, h.clock.Pending(), "nothing scheduled")
		})
	}
}

func TestSubmitLifecycle(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Open(domain.PackagePrestige))
	fillRequired(t, h.ctrl)

	require.NoError(t, h.ctrl.Submit())
	assert.Equal(t, booking.StatusSubmitting, h.ctrl.State().Status, "transition is synchronous")

	t.Run("form is locked while submitting", func(t *testing.T) {
		assert.ErrorIs(t, h.ctrl.SetField(booking.FieldName, "Other"), domain.ErrNotEditable)
		assert.ErrorIs(t, h.ctrl.Submit(), domain.ErrNotEditable)
	})

	h.clock.Advance(booking.DefaultSubmitDelay - time.Millisecond)
	assert.Equal(t, booking.StatusSubmitting, h.ctrl.State().Status)
	assert.Equal(t, 0, h.submitter.count())

	h.clock.Advance(time.Millisecond)
	st := h.ctrl.State()
	assert.Equal(t, booking.StatusSuccess, st.Status)
	assert.Equal(t, "ref-1", st.Reference)
	require.Equal(t, 1, h.submitter.count())
	assert.Equal(t, domain.PackagePrestige, h.submitter.inquiries[0].PackageType)
	assert.Equal(t, "Ama Mensah", h.submitter.inquiries[0].Name)

	h.clock.Advance(booking.DefaultAutoCloseDelay - time.Millisecond)
	assert.True(t, h.ctrl.IsOpen())

	h.clock.Advance(time.Millisecond)
	st = h.ctrl.State()
	assert.False(t, st.Open)
	assert.Equal(t, booking.StatusIdle, st.Status)
	assert.Equal(t, domain.PackageStandard, st.Form.PackageType)
	assert.Empty(t, st.Form.Name)

	require.Equal(t, 2, h.changeCount())
	assert.Equal(t, booking.StatusSuccess, h.changes[0].Status)
	assert.False(t, h.changes[1].Open)
}

func TestCloseCancelsPendingAutoClose(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Open(domain.PackageStandard))
	fillRequired(t, h.ctrl)
	require.NoError(t, h.ctrl.Submit())
	h.clock.Advance(booking.DefaultSubmitDelay)
	require.Equal(t, booking.StatusSuccess, h.ctrl.State().Status)
	changesBefore := h.changeCount()

	h.ctrl.Close()
	assert.Equal(t, 0, h.clock.Pending(), "auto-close timer stopped")

	// Reopen to make any stray mutation observable.
	require.NoError(t, h.ctrl.Open(domain.PackageFellowship))
	require.NoError(t, h.ctrl.SetField(booking.FieldName, "Kofi"))

	h.clock.Advance(booking.DefaultAutoCloseDelay * 2)
	st := h.ctrl.State()
	assert.True(t, st.Open)
	assert.Equal(t, "Kofi", st.Form.Name)
	assert.Equal(t, domain.PackageFellowship, st.Form.PackageType)
	assert.Equal(t, changesBefore, h.changeCount(), "no callback fired after close")
}

func TestCloseDuringSubmittingAbandonsSubmission(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Open(domain.PackageStandard))
	fillRequired(t, h.ctrl)
	require.NoError(t, h.ctrl.Submit())

	h.ctrl.Close()
	h.clock.Advance(time.Minute)

	assert.Equal(t, 0, h.submitter.count())
	assert.Equal(t, 0, h.changeCount())
	assert.False(t, h.ctrl.IsOpen())
}

func TestCloseWhileSubmitterRunsDiscardsResult(t *testing.T) {
	clock := testutils.NewManualScheduler()
	var ctrl *booking.Controller
	var seen context.Context
	ctrl = booking.NewController(booking.Options{
		Scheduler: clock,
		Submitter: booking.SubmitterFunc(func(ctx context.Context, _ domain.BookingInquiry) (string, error) {
			seen = ctx
			ctrl.Close()
			return "late", nil
		}),
	})
	require.NoError(t, ctrl.Open(domain.PackageStandard))
	fillRequired(t, ctrl)
	require.NoError(t, ctrl.Submit())

	clock.Advance(booking.DefaultSubmitDelay)

	require.NotNil(t, seen)
	assert.ErrorIs(t, seen.Err(), context.Canceled)
	st := ctrl.State()
	assert.False(t, st.Open)
	assert.Empty(t, st.Reference)
	assert.Equal(t, 0, clock.Pending())
}

func TestReopenDoesNotLeakState(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Open(domain.PackageStandard))
	require.NoError(t, h.ctrl.SetField(booking.FieldName, "Ama"))
	h.ctrl.Close()

	require.NoError(t, h.ctrl.Open(domain.PackageStandard))
	assert.Empty(t, h.ctrl.State().Form.Name)
}

func TestOpenWhileOpenReplacesInstance(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Open(domain.PackageStandard))
	fillRequired(t, h.ctrl)
	require.NoError(t, h.ctrl.Submit())

	require.NoError(t, h.ctrl.Open(domain.PackagePrestige))
	h.clock.Advance(time.Minute)

	st := h.ctrl.State()
	assert.True(t, st.Open)
	assert.Equal(t, booking.StatusIdle, st.Status)
	assert.Equal(t, domain.PackagePrestige, st.Form.PackageType)
	assert.Empty(t, st.Form.Name)
	assert.Equal(t, 0, h.submitter.count(), "replaced instance never delivers")
}

func TestFailedSubmissionAllowsRetry(t *testing.T) {
	h := newHarness(t)
	h.submitter.err = errors.New("backend unavailable")

	require.NoError(t, h.ctrl.Open(domain.PackageInvited))
	fillRequired(t, h.ctrl)
	require.NoError(t, h.ctrl.Submit())
	h.clock.Advance(booking.DefaultSubmitDelay)

	st := h.ctrl.State()
	assert.Equal(t, booking.StatusFailed, st.Status)
	assert.NotEmpty(t, st.Failure)
	assert.True(t, st.Open)
	assert.Equal(t, "Ama Mensah", st.Form.Name, "values survive a failure")
	assert.Equal(t, 0, h.clock.Pending(), "no auto-close after failure")

	h.submitter.err = nil
	require.NoError(t, h.ctrl.SetField(booking.FieldMessage, "Second try"))
	require.NoError(t, h.ctrl.Submit())
	assert.Equal(t, booking.StatusSubmitting, h.ctrl.State().Status)

	h.clock.Advance(booking.DefaultSubmitDelay)
	assert.Equal(t, booking.StatusSuccess, h.ctrl.State().Status)
	assert.Equal(t, "Second try", h.submitter.inquiries[1].Message)
}

func TestCustomDelays(t *testing.T) {
	clock := testutils.NewManualScheduler()
	ctrl := booking.NewController(booking.Options{
		Scheduler:      clock,
		SubmitDelay:    10 * time.Millisecond,
		AutoCloseDelay: 20 * time.Millisecond,
	})
	require.NoError(t, ctrl.Open(""))
	fillRequired(t, ctrl)
	require.NoError(t, ctrl.Submit())

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, booking.StatusSuccess, ctrl.State().Status)
	clock.Advance(20 * time.Millisecond)
	assert.False(t, ctrl.IsOpen())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", booking.StatusIdle.String())
	assert.Equal(t, "submitting", booking.StatusSubmitting.String())
	assert.Equal(t, "success", booking.StatusSuccess.String())
	assert.Equal(t, "failed", booking.StatusFailed.String())
}

func TestParseField(t *testing.T) {
	f, err := booking.ParseField("packageType")
	require.NoError(t, err)
	assert.Equal(t, booking.FieldPackage, f)

	_, err = booking.ParseField("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidField)
}
