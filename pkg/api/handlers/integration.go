package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mateovidal/crmbridge/pkg/api/errors"
	"github.com/mateovidal/crmbridge/pkg/crmsync"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// IntegrationHandler exposes integration management, per-provider syncs and
// the generic inbound webhook endpoint.
type IntegrationHandler struct {
	registry  *integration.Registry
	sync      *crmsync.Manager
	validator *validator.Validate
}

// NewIntegrationHandler creates a new integration handler.
func NewIntegrationHandler(registry *integration.Registry, sync *crmsync.Manager) *IntegrationHandler {
	return &IntegrationHandler{
		registry:  registry,
		sync:      sync,
		validator: validator.New(),
	}
}

// Get returns the integration row for a provider. Secrets live in their own
// table and are never part of this response.
func (h *IntegrationHandler) Get(c echo.Context) error {
	provider := c.Param("provider")

	integ, err := h.registry.GetByProvider(c.Request().Context(), provider)
	if err != nil {
		if stderrors.Is(err, integration.ErrNotConfigured) {
			return errors.NotFound(c, "integration not configured: "+provider)
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(integ))
}

// Create registers a new integration.
func (h *IntegrationHandler) Create(c echo.Context) error {
	var req struct {
		Name        string `json:"name" validate:"required,min=1,max=100"`
		Provider    string `json:"provider" validate:"required,oneof=zoho suitecrm espocrm orocrm whatsapp stripe"`
		Description string `json:"description" validate:"max=500"`
	}
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	integ, err := h.registry.Create(c.Request().Context(), req.Name, req.Provider, req.Description)
	if err != nil {
		return errors.Conflict(c, err.Error())
	}

	return c.JSON(http.StatusCreated, models.OK(integ))
}

// Update applies a partial update to a provider's integration.
func (h *IntegrationHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	provider := c.Param("provider")

	integ, err := h.registry.GetByProvider(ctx, provider)
	if err != nil {
		if stderrors.Is(err, integration.ErrNotConfigured) {
			return errors.NotFound(c, "integration not configured: "+provider)
		}
		return errors.InternalError(c, err)
	}

	var req models.UpdateIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	updated, err := h.registry.Update(ctx, integ.ID, req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(updated))
}

// SetSecret stores one credential for a provider. The value is write-only:
// it is never returned by any endpoint.
func (h *IntegrationHandler) SetSecret(c echo.Context) error {
	ctx := c.Request().Context()
	provider := c.Param("provider")

	integ, err := h.registry.GetByProvider(ctx, provider)
	if err != nil {
		if stderrors.Is(err, integration.ErrNotConfigured) {
			return errors.NotFound(c, "integration not configured: "+provider)
		}
		return errors.InternalError(c, err)
	}

	var req models.SetSecretRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.registry.SetSecret(ctx, integ.ID, req.Key, req.Value); err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(map[string]string{"key": req.Key}))
}

// Logs returns the audit trail for a provider, newest first.
func (h *IntegrationHandler) Logs(c echo.Context) error {
	ctx := c.Request().Context()
	provider := c.Param("provider")

	integ, err := h.registry.GetByProvider(ctx, provider)
	if err != nil {
		if stderrors.Is(err, integration.ErrNotConfigured) {
			return errors.NotFound(c, "integration not configured: "+provider)
		}
		return errors.InternalError(c, err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	logs, err := h.registry.Logs(ctx, integ.ID, limit)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(logs))
}

// Sync runs one pull sync for a provider.
func (h *IntegrationHandler) Sync(c echo.Context) error {
	provider := c.Param("provider")

	result, err := h.sync.Sync(c.Request().Context(), provider)
	if err != nil {
		if stderrors.Is(err, integration.ErrNotConfigured) {
			return errors.NotFound(c, "integration not configured: "+provider)
		}
		var ue *crmsync.UpstreamError
		if stderrors.As(err, &ue) {
			return errors.UpstreamError(c, err)
		}
		return errors.BadRequest(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.OK(result))
}

// SyncStatus reports the sync state of a provider. Unconfigured providers
// answer 200 with isConfigured=false.
func (h *IntegrationHandler) SyncStatus(c echo.Context) error {
	provider := c.Param("provider")

	status, err := h.sync.Status(c.Request().Context(), provider)
	if err != nil {
		return errors.BadRequest(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.OK(status))
}

// Inbound accepts a generic provider webhook, logs it and re-broadcasts it
// internally.
func (h *IntegrationHandler) Inbound(c echo.Context) error {
	provider := c.Param("provider")

	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return errors.BadRequest(c, "invalid JSON payload")
	}

	if err := h.sync.HandleInbound(c.Request().Context(), provider, payload); err != nil {
		if stderrors.Is(err, integration.ErrNotConfigured) {
			return errors.NotFound(c, "integration not configured: "+provider)
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(map[string]string{"status": "received"}))
}
