package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mateovidal/crmbridge/pkg/api/errors"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/models"
	"github.com/mateovidal/crmbridge/pkg/whatsapp"
)

// WhatsAppHandler exposes outbound messaging.
type WhatsAppHandler struct {
	service   *whatsapp.Service
	validator *validator.Validate
}

// NewWhatsAppHandler creates a new WhatsApp handler.
func NewWhatsAppHandler(service *whatsapp.Service) *WhatsAppHandler {
	return &WhatsAppHandler{
		service:   service,
		validator: validator.New(),
	}
}

// SendMessage sends one text message.
func (h *WhatsAppHandler) SendMessage(c echo.Context) error {
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.service.SendText(c.Request().Context(), req)
	if err != nil {
		if stderrors.Is(err, integration.ErrNotConfigured) {
			return errors.NotFound(c, "whatsapp integration not configured")
		}
		return errors.BadRequest(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.OK(result))
}
