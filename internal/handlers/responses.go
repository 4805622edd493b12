package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/validation"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// InquiryAccepted is returned once an inquiry has been queued for delivery.
type InquiryAccepted struct {
	Reference string `json:"reference"`
}

// ErrorStatus maps domain errors onto an HTTP status and a stable code.
func ErrorStatus(err error) (int, string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr), errors.Is(err, domain.ErrIncompleteForm):
		return http.StatusUnprocessableEntity, "validation_failed"
	case errors.Is(err, domain.ErrUnknownPackage), errors.Is(err, domain.ErrInvalidField):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, domain.ErrModalClosed), errors.Is(err, domain.ErrNotEditable):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrSubmissionFailed):
		return http.StatusServiceUnavailable, "submission_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// NewErrorResponse builds the JSON body for err.
func NewErrorResponse(err error) (int, ErrorResponse) {
	status, code := ErrorStatus(err)
	resp := ErrorResponse{Code: code, Message: err.Error()}
	if status == http.StatusInternalServerError {
		resp.Message = http.StatusText(status)
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	return status, resp
}

// JSONError writes err as an ErrorResponse.
func JSONError(c echo.Context, err error) error {
	status, resp := NewErrorResponse(err)
	return c.JSON(status, resp)
}
