package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mateovidal/crmbridge/pkg/api/errors"
	"github.com/mateovidal/crmbridge/pkg/billing"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// BillingHandler exposes checkout, portal and the strict Stripe webhook.
type BillingHandler struct {
	service   *billing.Service
	validator *validator.Validate
}

// NewBillingHandler creates a new billing handler.
func NewBillingHandler(service *billing.Service) *BillingHandler {
	return &BillingHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateCheckout creates a Stripe checkout session.
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	session, err := h.service.CreateCheckoutSession(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(session))
}

// CreatePortal creates a Stripe customer portal session.
func (h *BillingHandler) CreatePortal(c echo.Context) error {
	var req models.PortalRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	portal, err := h.service.CreatePortalSession(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(portal))
}

// StripeWebhook verifies and processes a Stripe event. A missing or invalid
// signature answers 400 before anything is written.
func (h *BillingHandler) StripeWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.BadRequest(c, "failed to read request body")
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return errors.BadRequest(c, "missing Stripe-Signature header")
	}

	eventType, err := h.service.HandleWebhook(c.Request().Context(), body, signature)
	if err != nil {
		if stderrors.Is(err, billing.ErrInvalidSignature) {
			return errors.BadRequest(c, "invalid signature")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(map[string]string{"received": eventType}))
}
