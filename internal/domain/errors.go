package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for booking and content failures.
var (
	ErrUnknownPackage   = errors.New("unknown package tier")
	ErrInvalidField     = errors.New("unknown booking form field")
	ErrModalClosed      = errors.New("booking modal is not open")
	ErrNotEditable      = errors.New("booking form is locked while a submission is in progress")
	ErrIncompleteForm   = errors.New("booking form is missing required fields")
	ErrSubmissionFailed = errors.New("booking inquiry could not be delivered")
	ErrNotFound         = errors.New("requested resource not found")
)
