// Package inquiry accepts booking inquiries, stamps them with a reference
// and fans them out to the concierge and the journal over the event bus.
package inquiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/pubsub"
	"github.com/nfrund/salon/internal/validation"
)

// Sources recorded on Submitted events.
const (
	SourceModal = "modal"
	SourceAPI   = "api"
)

// Service is the reservation backend seam used by the booking modal and
// the JSON API.
type Service struct {
	publisher pubsub.Publisher
	logger    *slog.Logger
	now       func() time.Time
	newRef    func() string
}

// NewService creates a Service that publishes to publisher.
func NewService(publisher pubsub.Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		newRef:    func() string { return uuid.NewString() },
	}
}

// Submit implements booking.Submitter for the modal.
func (s *Service) Submit(ctx context.Context, in domain.BookingInquiry) (string, error) {
	return s.Accept(ctx, in, SourceModal)
}

// Accept validates in, assigns a reference and publishes it. source names
// the channel the inquiry came from.
func (s *Service) Accept(ctx context.Context, in domain.BookingInquiry, source string) (string, error) {
	in = in.Normalize()
	if in.PackageType == "" {
		in.PackageType = domain.DefaultPackage
	}
	if err := validation.Struct(in); err != nil {
		return "", err
	}

	event := Submitted{
		Reference:   s.newRef(),
		ReceivedAt:  s.now().UTC(),
		Source:      source,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		PackageType: in.PackageType,
		Message:     in.Message,
	}

	s.logger.InfoContext(ctx, "Booking inquiry captured",
		"reference", event.Reference,
		"source", source,
		"package", event.PackageType,
		"name", event.Name,
		"email", event.Email,
		"phone", event.Phone,
	)

	if err := pubsub.Publish(ctx, s.publisher, TopicSubmitted, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish booking inquiry", "reference", event.Reference, "error", err)
		return "", fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}
	return event.Reference, nil
}
