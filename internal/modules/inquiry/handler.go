package inquiry

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/handlers"
	intake "github.com/nfrund/salon/internal/inquiry"
	"github.com/nfrund/salon/internal/middleware"
)

// Handler serves the JSON inquiry API.
type Handler struct {
	service *intake.Service
}

// NewHandler creates a new Handler.
func NewHandler(service *intake.Service) *Handler {
	return &Handler{service: service}
}

// Create accepts an inquiry and answers with its reference once it is
// queued for delivery.
func (h *Handler) Create(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var req handlers.InquiryRequest
	if err := c.Bind(&req); err != nil {
		logger.Debug("Rejected malformed inquiry", "error", err)
		return c.JSON(http.StatusBadRequest, handlers.ErrorResponse{
			Code:    "bad_request",
			Message: "request body must be a JSON inquiry",
		})
	}

	ref, err := h.service.Accept(c.Request().Context(), domain.BookingInquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		PackageType: domain.PackageType(strings.ToLower(strings.TrimSpace(req.PackageType))),
		Message:     req.Message,
	}, intake.SourceAPI)
	if err != nil {
		logger.Info("Inquiry not accepted", "error", err)
		return handlers.JSONError(c, err)
	}
	return c.JSON(http.StatusAccepted, handlers.InquiryAccepted{Reference: ref})
}
