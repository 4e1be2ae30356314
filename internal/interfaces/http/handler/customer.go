package handler

import (
	"net/http"

	partnerapp "github.com/estateops/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	service *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// ListCustomers godoc
//
//	@Summary		List customers
//	@Tags			customers
//	@Produce		json
//	@Param			search		query		string	false	"Search in name, phone and national ID"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]partnerapp.CustomerResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var filter partnerapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	customers, total, err := h.service.ListCustomers(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, customers, total, filter.Page, filter.PageSize)
}

// GetCustomer godoc
//
//	@Summary		Get customer by ID
//	@Tags			customers
//	@Produce		json
//	@Param			id	path		string	true	"Customer ID"
//	@Success		200	{object}	APIResponse[partnerapp.CustomerResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	customer, err := h.service.GetCustomer(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// CreateCustomer godoc
//
//	@Summary		Create customer
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		partnerapp.CustomerRequest	true	"Customer creation request"
//	@Success		201		{object}	APIResponse[partnerapp.CustomerResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req partnerapp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.service.CreateCustomer(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, customer)
}

// UpdateCustomer godoc
//
//	@Summary		Update customer
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Customer ID"
//	@Param			request	body		partnerapp.CustomerRequest	true	"Customer update request"
//	@Success		200		{object}	APIResponse[partnerapp.CustomerResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	var req partnerapp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// DeleteCustomer godoc
//
//	@Summary		Delete customer
//	@Description	Delete a customer. Fails if the customer has contracts.
//	@Tags			customers
//	@Param			id	path	string	true	"Customer ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	if err := h.service.DeleteCustomer(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}
