package booking

import (
	"fmt"

	"github.com/nfrund/salon/internal/domain"
)

// Status is the submission lifecycle of one modal instance.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Editable reports whether fields may change and a submission may start.
func (s Status) Editable() bool {
	return s == StatusIdle || s == StatusFailed
}

// Field names one input of the booking form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldPackage Field = "packageType"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone, FieldPackage, FieldMessage}
}

// ParseField maps a form parameter to a Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidField, s)
}

// Form holds the values typed into the booking modal.
type Form struct {
	Name        string
	Email       string
	Phone       string
	PackageType domain.PackageType
	Message     string
}

// NewForm returns an empty form preset to pkg, or to the default tier when
// pkg is empty.
func NewForm(pkg domain.PackageType) Form {
	if pkg == "" {
		pkg = domain.DefaultPackage
	}
	return Form{PackageType: pkg}
}

// Set updates exactly one field.
func (f *Form) Set(field Field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldMessage:
		f.Message = value
	case FieldPackage:
		p := domain.PackageType(value)
		if !p.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrUnknownPackage, value)
		}
		f.PackageType = p
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
	}
	return nil
}

// Get returns the current value of field.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldPackage:
		return string(f.PackageType)
	case FieldMessage:
		return f.Message
	}
	return ""
}

// Inquiry converts the form into the payload sent to the backend.
func (f Form) Inquiry() domain.BookingInquiry {
	return domain.BookingInquiry{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		PackageType: f.PackageType,
		Message:     f.Message,
	}.Normalize()
}
