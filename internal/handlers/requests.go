package handlers

import "github.com/nfrund/salon/internal/validation"

// CustomValidator adapts the shared go-playground validator to Echo's
// Validator interface.
type CustomValidator struct{}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{}
}

// Validate implements the echo.Validator interface. Failures are reported
// as *validation.Error so callers get field-level detail.
func (cv *CustomValidator) Validate(i interface{}) error {
	return validation.Struct(i)
}

// ScrollRequest is posted by the navigation bar on window scroll.
type ScrollRequest struct {
	Offset float64 `form:"offset" json:"offset"`
}

// OpenBookingRequest is posted by every reserve control.
type OpenBookingRequest struct {
	Package string `form:"package" json:"package"`
	Source  string `form:"source" json:"source"`
}

// InquiryRequest is the body of the JSON inquiry API.
type InquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PackageType string `json:"package_type"`
	Message     string `json:"message"`
}
