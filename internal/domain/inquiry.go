package domain

import "strings"

// BookingInquiry is the payload captured by the booking form and handed to
// the reservation backend.
type BookingInquiry struct {
	Name        string      `json:"name" form:"name" validate:"required,max=120"`
	Email       string      `json:"email" form:"email" validate:"required,email,max=254"`
	Phone       string      `json:"phone" form:"phone" validate:"required,max=40"`
	PackageType PackageType `json:"package_type" form:"packageType" validate:"required,oneof=standard prestige fellowship invited"`
	Message     string      `json:"message" form:"message" validate:"max=2000"`
}

// Normalize trims surrounding whitespace from every free-text field.
func (b BookingInquiry) Normalize() BookingInquiry {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	b.Phone = strings.TrimSpace(b.Phone)
	b.Message = strings.TrimSpace(b.Message)
	return b
}
