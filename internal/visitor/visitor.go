// Package visitor keeps the interactive state of each browser visiting the
// landing page: navigation mode, mobile menu, FAQ accordion and booking modal.
package visitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/salon/internal/booking"
	"github.com/nfrund/salon/internal/ui"
)

// Visitor is the page-root state of one browser session.
type Visitor struct {
	ID string

	mu      sync.Mutex
	Nav     *ui.ScrollObserver
	Menu    ui.MobileMenu
	FAQ     *ui.Accordion
	Booking *booking.Controller

	lastSeen time.Time
}

// Mount applies the resets of a fresh page load: the accordion collapses,
// the menu closes, the scroll observer re-subscribes and any booking modal
// is torn down.
func (v *Visitor) Mount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.FAQ.Reset()
	v.Menu.Close()
	v.Nav.Unmount()
	v.Nav.Mount()
	v.Booking.Close()
}

// Do runs fn with the visitor's UI flags locked. The booking controller
// has its own lock and may be used inside or outside Do.
func (v *Visitor) Do(fn func(v *Visitor)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v)
}

// Snapshot is a copy of the UI flags used for rendering.
type Snapshot struct {
	NavMode  ui.NavMode
	MenuOpen bool
	// FAQOpen is the expanded accordion entry, or -1.
	FAQOpen int
}

// Snapshot copies the UI flags under the visitor lock.
func (v *Visitor) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	open, ok := v.FAQ.OpenIndex()
	if !ok {
		open = -1
	}
	return Snapshot{
		NavMode:  v.Nav.Mode(),
		MenuOpen: v.Menu.IsOpen(),
		FAQOpen:  open,
	}
}

// ControllerFactory builds the booking controller for a new visitor.
type ControllerFactory func(visitorID string) *booking.Controller

// Store holds every active visitor.
type Store struct {
	mu            sync.Mutex
	visitors      map[string]*Visitor
	ttl           time.Duration
	newController ControllerFactory
	now           func() time.Time
}

// NewStore creates a store that evicts visitors idle for longer than ttl.
func NewStore(ttl time.Duration, factory ControllerFactory) *Store {
	if factory == nil {
		factory = func(string) *booking.Controller {
			return booking.NewController(booking.Options{})
		}
	}
	return &Store{
		visitors:      make(map[string]*Visitor),
		ttl:           ttl,
		newController: factory,
		now:           time.Now,
	}
}

// Touch returns the visitor for id, creating it on first sight, and marks
// it as recently seen.
func (s *Store) Touch(id string) *Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[id]
	if !ok {
		nav := ui.NewScrollObserver()
		nav.Mount()
		v = &Visitor{
			ID:      id,
			Nav:     nav,
			FAQ:     ui.NewAccordion(),
			Booking: s.newController(id),
		}
		s.visitors[id] = v
		slog.Debug("Visitor created", "visitor_id", id)
	}
	v.lastSeen = s.now()
	return v
}

// Get returns the visitor for id without refreshing it.
func (s *Store) Get(id string) (*Visitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitors[id]
	return v, ok
}

// Len reports the number of active visitors.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// Sweep evicts visitors not seen since now minus the TTL and returns how
// many were removed. Evicted booking modals are closed so their timers
// never fire.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	var expired []*Visitor
	for id, v := range s.visitors {
		if now.Sub(v.lastSeen) > s.ttl {
			expired = append(expired, v)
			delete(s.visitors, id)
		}
	}
	s.mu.Unlock()

	for _, v := range expired {
		v.Booking.Close()
	}
	if len(expired) > 0 {
		slog.Debug("Swept idle visitors", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps periodically until ctx is canceled.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			s.Sweep(t)
		}
	}
}

// Shutdown closes every booking modal and forgets all visitors.
func (s *Store) Shutdown() error {
	s.mu.Lock()
	visitors := s.visitors
	s.visitors = make(map[string]*Visitor)
	s.mu.Unlock()

	for _, v := range visitors {
		v.Booking.Close()
	}
	return nil
}
