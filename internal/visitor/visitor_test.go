package visitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/salon/internal/booking"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/testutils"
	"github.com/nfrund/salon/internal/ui"
)

func newTestStore(t *testing.T, sched *testutils.ManualScheduler) *Store {
	t.Helper()
	return NewStore(time.Minute, func(string) *booking.Controller {
		return booking.NewController(booking.Options{Scheduler: sched})
	})
}

func TestTouchCreatesOnce(t *testing.T) {
	s := newTestStore(t, testutils.NewManualScheduler())

	a := s.Touch("a")
	again := s.Touch("a")
	assert.Same(t, a, again)
	assert.Equal(t, 1, s.Len())

	assert.True(t, a.Nav.Mounted())
	assert.Equal(t, ui.NavTransparent, a.Nav.Mode())
	_, open := a.FAQ.OpenIndex()
	assert.False(t, open)
	assert.False(t, a.Booking.IsOpen())

	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestMountResetsPageState(t *testing.T) {
	sched := testutils.NewManualScheduler()
	s := newTestStore(t, sched)
	v := s.Touch("a")

	v.Do(func(v *Visitor) {
		v.FAQ.Toggle(1)
		v.Menu.Open()
		v.Nav.Observe(120)
	})
	require.NoError(t, v.Booking.Open(domain.PackagePrestige))

	v.Mount()

	_, open := v.FAQ.OpenIndex()
	assert.False(t, open)
	assert.False(t, v.Menu.IsOpen())
	assert.True(t, v.Nav.Mounted())
	assert.Equal(t, ui.NavTransparent, v.Nav.Mode())
	assert.False(t, v.Booking.IsOpen())
}

func TestSweepEvictsIdleVisitors(t *testing.T) {
	sched := testutils.NewManualScheduler()
	s := newTestStore(t, sched)

	start := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return start }
	idle := s.Touch("idle")

	require.NoError(t, idle.Booking.Open(domain.PackageStandard))
	for _, f := range []struct {
		field booking.Field
		value string
	}{
		{booking.FieldName, "Ada"},
		{booking.FieldEmail, "ada@example.com"},
		{booking.FieldPhone, "+1 555 0100"},
	} {
		require.NoError(t, idle.Booking.SetField(f.field, f.value))
	}
	require.NoError(t, idle.Booking.Submit())
	require.Equal(t, 1, sched.Pending())

	s.now = func() time.Time { return start.Add(50 * time.Second) }
	s.Touch("active")

	removed := s.Sweep(start.Add(90 * time.Second))
	assert.Equal(t, 1, removed)

	_, ok := s.Get("idle")
	assert.False(t, ok)
	_, ok = s.Get("active")
	assert.True(t, ok)

	// The evicted modal was torn down, so its pending submission is inert.
	assert.Equal(t, 0, sched.Pending())
	assert.False(t, idle.Booking.IsOpen())
}

func TestShutdownClosesBookings(t *testing.T) {
	s := newTestStore(t, testutils.NewManualScheduler())
	v := s.Touch("a")
	require.NoError(t, v.Booking.Open(""))

	require.NoError(t, s.Shutdown())
	assert.False(t, v.Booking.IsOpen())
	assert.Equal(t, 0, s.Len())
}

func TestSnapshot(t *testing.T) {
	s := newTestStore(t, testutils.NewManualScheduler())
	v := s.Touch("a")

	snap := v.Snapshot()
	assert.Equal(t, Snapshot{NavMode: ui.NavTransparent, FAQOpen: -1}, snap)

	v.Do(func(v *Visitor) {
		v.Nav.Observe(80)
		v.Menu.Open()
		v.FAQ.Toggle(2)
	})
	assert.Equal(t, Snapshot{NavMode: ui.NavSolid, MenuOpen: true, FAQOpen: 2}, v.Snapshot())
}
