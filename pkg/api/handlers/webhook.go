package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mateovidal/crmbridge/pkg/api/errors"
	"github.com/mateovidal/crmbridge/pkg/models"
	"github.com/mateovidal/crmbridge/pkg/webhook"
)

// WebhookHandler manages outbound webhook endpoints and their deliveries.
type WebhookHandler struct {
	service   *webhook.Service
	validator *validator.Validate
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(service *webhook.Service) *WebhookHandler {
	return &WebhookHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateEndpoint registers a subscriber endpoint. The signing secret is
// returned only in this response.
func (h *WebhookHandler) CreateEndpoint(c echo.Context) error {
	var req models.CreateEndpointRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	createdBy, _ := c.Get("user_email").(string)
	ep, err := h.service.CreateEndpoint(c.Request().Context(), req.URL, req.Events, req.Description, createdBy)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.OK(map[string]interface{}{
		"id":         ep.ID,
		"url":        ep.URL,
		"events":     ep.Events,
		"secret":     ep.Secret,
		"is_active":  ep.IsActive,
		"created_at": ep.CreatedAt,
	}))
}

// ListEndpoints lists registered endpoints without their secrets.
func (h *WebhookHandler) ListEndpoints(c echo.Context) error {
	endpoints, err := h.service.ListEndpoints(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	views := make([]map[string]interface{}, len(endpoints))
	for i, ep := range endpoints {
		views[i] = map[string]interface{}{
			"id":         ep.ID,
			"url":        ep.URL,
			"events":     ep.Events,
			"is_active":  ep.IsActive,
			"created_by": ep.CreatedBy,
			"created_at": ep.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, models.OK(views))
}

// DeleteEndpoint removes an endpoint.
func (h *WebhookHandler) DeleteEndpoint(c echo.Context) error {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil {
		return errors.BadRequest(c, "invalid endpoint id")
	}

	if err := h.service.DeleteEndpoint(c.Request().Context(), id); err != nil {
		return errors.NotFound(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.OK(map[string]string{"status": "deleted"}))
}

// ListDeliveries returns delivery rows, optionally filtered by endpoint.
func (h *WebhookHandler) ListDeliveries(c echo.Context) error {
	endpointID, _ := strconv.Atoi(c.QueryParam("endpoint_id"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	deliveries, err := h.service.ListDeliveries(c.Request().Context(), endpointID, limit)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(deliveries))
}

// TestDispatch fires an arbitrary event through the dispatcher, for wiring
// checks against a staging subscriber.
func (h *WebhookHandler) TestDispatch(c echo.Context) error {
	var req models.TestDispatchRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.service.Dispatch(c.Request().Context(), req.Event, req.Data); err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(map[string]string{"status": "dispatched"}))
}
