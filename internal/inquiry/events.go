package inquiry

import (
	"time"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/pubsub"
)

// Submitted is published once an inquiry has been accepted.
type Submitted struct {
	Reference   string             `json:"reference"`
	ReceivedAt  time.Time          `json:"received_at"`
	Source      string             `json:"source"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	PackageType domain.PackageType `json:"package_type"`
	Message     string             `json:"message,omitempty"`
}

// TopicSubmitted carries every accepted booking inquiry.
var TopicSubmitted = pubsub.NewEvent[Submitted](
	"booking.inquiry.submitted",
	"A booking inquiry was accepted from the modal or the JSON API",
)
