package email

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/salon/internal/config"
)

// NewSender picks the concierge mail transport named by EMAIL_PROVIDER.
func NewSender(cfg config.Provider) (Sender, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.GetEmailProvider()))
	switch provider {
	case "", "log":
		return NewLogSender(cfg.GetEmailSender()), nil
	case "resend":
		var errs []error
		if cfg.GetEmailAPIKey() == "" {
			errs = append(errs, errors.New("EMAIL_API_KEY is not set"))
		}
		if cfg.GetEmailSender() == "" {
			errs = append(errs, errors.New("EMAIL_SENDER is not set"))
		}
		if len(errs) > 0 {
			return nil, fmt.Errorf("email provider resend: %w", errors.Join(errs...))
		}
		return NewResendSender(cfg.GetEmailAPIKey(), cfg.GetEmailSender()), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", provider)
	}
}
