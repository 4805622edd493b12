// Package booking implements the booking-inquiry modal: its form values,
// the Idle → Submitting → Success lifecycle and the timers that drive it.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/validation"
)

const (
	// DefaultSubmitDelay stands in for the network round trip of a submission.
	DefaultSubmitDelay = 1500 * time.Millisecond
	// DefaultAutoCloseDelay is how long the confirmation stays visible.
	DefaultAutoCloseDelay = 2000 * time.Millisecond
)

// Submitter delivers a captured inquiry and returns a reference for it.
type Submitter interface {
	Submit(ctx context.Context, inquiry domain.BookingInquiry) (string, error)
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, inquiry domain.BookingInquiry) (string, error)

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, inquiry domain.BookingInquiry) (string, error) {
	return f(ctx, inquiry)
}

// Options configures a Controller.
type Options struct {
	SubmitDelay    time.Duration
	AutoCloseDelay time.Duration
	Scheduler      Scheduler
	Submitter      Submitter
	// OnChange receives a snapshot after every timer-driven transition
	// (submission result, auto-close). Request-driven transitions are
	// returned to the caller instead.
	OnChange func(State)
	Logger   *slog.Logger
}

// State is a snapshot of the modal for rendering.
type State struct {
	Open        bool
	Status      Status
	Form        Form
	Reference   string
	Failure     string
	FieldErrors map[string]string
}

// Controller owns the single booking modal of a page. Any call-to-action
// opens it through Open; opening again replaces the current instance.
// It is safe for concurrent use.
type Controller struct {
	opts Options

	mu          sync.Mutex
	generation  uint64
	open        bool
	status      Status
	form        Form
	reference   string
	failure     string
	fieldErrors map[string]string
	timer       Timer
	cancel      context.CancelFunc
}

// NewController creates a closed modal controller.
func NewController(opts Options) *Controller {
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}
	if opts.AutoCloseDelay <= 0 {
		opts.AutoCloseDelay = DefaultAutoCloseDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = SystemScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Submitter == nil {
		opts.Submitter = logSubmitter(opts.Logger)
	}
	return &Controller{
		opts: opts,
		form: NewForm(domain.DefaultPackage),
	}
}

// Open starts a fresh modal instance preset to pkg (the default tier when
// empty). A modal that is already open is discarded first.
func (c *Controller) Open(pkg domain.PackageType) error {
	if pkg == "" {
		pkg = domain.DefaultPackage
	}
	if !pkg.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownPackage, pkg)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.teardownLocked()
	c.open = true
	c.form = NewForm(pkg)
	return nil
}

// SetField updates one form field. Only allowed while the form is editable.
func (c *Controller) SetField(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return domain.ErrModalClosed
	}
	if !c.status.Editable() {
		return domain.ErrNotEditable
	}
	if err := c.form.Set(field, value); err != nil {
		return err
	}
	delete(c.fieldErrors, string(field))
	return nil
}

// Submit validates the form and, when complete, moves to Submitting and
// schedules delivery after the submit delay.
func (c *Controller) Submit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return domain.ErrModalClosed
	}
	if !c.status.Editable() {
		return domain.ErrNotEditable
	}

	inquiry := c.form.Inquiry()
	if err := validation.Struct(inquiry); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			c.fieldErrors = mapKeysToFields(verr.Fields)
		}
		return fmt.Errorf("%w: %w", domain.ErrIncompleteForm, err)
	}

	c.status = StatusSubmitting
	c.failure = ""
	c.fieldErrors = nil

	gen := c.generation
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.timer = c.opts.Scheduler.AfterFunc(c.opts.SubmitDelay, func() {
		c.deliver(ctx, gen, inquiry)
	})
	return nil
}

// Close hides the modal from any state, abandoning an in-flight
// submission and any pending auto-close.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked()
}

// State returns a snapshot of the modal.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// IsOpen reports whether a modal instance is shown.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Controller) deliver(ctx context.Context, gen uint64, inquiry domain.BookingInquiry) {
	c.mu.Lock()
	if gen != c.generation || c.status != StatusSubmitting {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	ref, err := c.opts.Submitter.Submit(ctx, inquiry)

	c.mu.Lock()
	if gen != c.generation || c.status != StatusSubmitting {
		// Closed or replaced while the submission was running.
		c.mu.Unlock()
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if err != nil {
		c.opts.Logger.Warn("Booking inquiry submission failed", "package", inquiry.PackageType, "error", err)
		c.status = StatusFailed
		c.failure = "We could not send your inquiry. Please try again."
	} else {
		c.status = StatusSuccess
		c.reference = ref
		c.timer = c.opts.Scheduler.AfterFunc(c.opts.AutoCloseDelay, func() {
			c.autoClose(gen)
		})
	}
	st := c.stateLocked()
	c.mu.Unlock()

	c.notify(st)
}

func (c *Controller) autoClose(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.status != StatusSuccess {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.teardownLocked()
	st := c.stateLocked()
	c.mu.Unlock()

	c.notify(st)
}

// teardownLocked stops pending work and resets the modal to a closed,
// default form. Bumping the generation makes stale callbacks no-ops.
func (c *Controller) teardownLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	c.open = false
	c.status = StatusIdle
	c.form = NewForm(domain.DefaultPackage)
	c.reference = ""
	c.failure = ""
	c.fieldErrors = nil
}

func (c *Controller) stateLocked() State {
	return State{
		Open:        c.open,
		Status:      c.status,
		Form:        c.form,
		Reference:   c.reference,
		Failure:     c.failure,
		FieldErrors: maps.Clone(c.fieldErrors),
	}
}

func (c *Controller) notify(st State) {
	if c.opts.OnChange != nil {
		c.opts.OnChange(st)
	}
}

// mapKeysToFields renames inquiry json keys to form field names.
func mapKeysToFields(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		if k == "package_type" {
			k = string(FieldPackage)
		}
		out[k] = v
	}
	return out
}

// logSubmitter only records the inquiry on the diagnostic log.
func logSubmitter(logger *slog.Logger) Submitter {
	return SubmitterFunc(func(ctx context.Context, inquiry domain.BookingInquiry) (string, error) {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Info("Booking inquiry captured",
			"name", inquiry.Name,
			"email", inquiry.Email,
			"phone", inquiry.Phone,
			"package", inquiry.PackageType,
		)
		return "", nil
	})
}
