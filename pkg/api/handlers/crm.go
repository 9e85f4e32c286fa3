package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mateovidal/crmbridge/pkg/api/errors"
	"github.com/mateovidal/crmbridge/pkg/crm"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// CRMHandler exposes leads, deals and customers.
type CRMHandler struct {
	service   *crm.Service
	validator *validator.Validate
}

// NewCRMHandler creates a new CRM handler.
func NewCRMHandler(service *crm.Service) *CRMHandler {
	return &CRMHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateLead creates a lead.
func (h *CRMHandler) CreateLead(c echo.Context) error {
	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	l, err := h.service.CreateLead(c.Request().Context(), req.Name, req.Email, req.Phone, req.Company, req.Source)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.OK(l))
}

// GetLead returns one lead.
func (h *CRMHandler) GetLead(c echo.Context) error {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil {
		return errors.BadRequest(c, "invalid lead id")
	}

	l, err := h.service.GetLead(c.Request().Context(), id)
	if err != nil {
		return errors.NotFound(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.OK(l))
}

// ListLeads lists leads, optionally filtered by status.
func (h *CRMHandler) ListLeads(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	leads, err := h.service.ListLeads(c.Request().Context(), c.QueryParam("status"), limit)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(leads))
}

// UpdateLeadStatus moves a lead through its lifecycle.
func (h *CRMHandler) UpdateLeadStatus(c echo.Context) error {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil {
		return errors.BadRequest(c, "invalid lead id")
	}

	var req models.UpdateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	l, err := h.service.UpdateLeadStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.NotFound(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.OK(l))
}

// CreateDeal creates a deal.
func (h *CRMHandler) CreateDeal(c echo.Context) error {
	var req models.CreateDealRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	d, err := h.service.CreateDeal(c.Request().Context(), req.Title, req.Amount, req.Currency, req.CustomerID)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.OK(d))
}

// ListDeals lists deals, optionally filtered by stage.
func (h *CRMHandler) ListDeals(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	deals, err := h.service.ListDeals(c.Request().Context(), c.QueryParam("stage"), limit)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(deals))
}

// UpdateDealStage moves a deal to another pipeline stage.
func (h *CRMHandler) UpdateDealStage(c echo.Context) error {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil {
		return errors.BadRequest(c, "invalid deal id")
	}

	var req models.UpdateDealStageRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	d, err := h.service.UpdateDealStage(c.Request().Context(), id, req.Stage)
	if err != nil {
		return errors.NotFound(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.OK(d))
}

// CreateCustomer creates a customer.
func (h *CRMHandler) CreateCustomer(c echo.Context) error {
	var req models.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	cust, err := h.service.CreateCustomer(c.Request().Context(), req.Name, req.Email, req.Phone, req.Company)
	if err != nil {
		return errors.Conflict(c, err.Error())
	}

	return c.JSON(http.StatusCreated, models.OK(cust))
}

// GetCustomer returns one customer.
func (h *CRMHandler) GetCustomer(c echo.Context) error {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil {
		return errors.BadRequest(c, "invalid customer id")
	}

	cust, err := h.service.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.NotFound(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.OK(cust))
}

// ListCustomers lists customers.
func (h *CRMHandler) ListCustomers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	customers, err := h.service.ListCustomers(c.Request().Context(), limit)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(customers))
}
