package handler

import (
	"net/http"

	"github.com/estateops/backend/internal/application/property"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnitHandler handles property unit API endpoints
type UnitHandler struct {
	BaseHandler
	service *property.UnitService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(service *property.UnitService) *UnitHandler {
	return &UnitHandler{service: service}
}

// ListUnits godoc
//
//	@Summary		List units
//	@Description	Get a paginated list of property units
//	@Tags			units
//	@Produce		json
//	@Param			status		query		string	false	"Filter by status"	Enums(AVAILABLE, RESERVED, SOLD)
//	@Param			unit_type	query		string	false	"Filter by unit type"
//	@Param			search		query		string	false	"Search in code, name and address"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]property.UnitResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var filter property.UnitListFilter
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

	units, total, err := h.service.ListUnits(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, units, total, filter.Page, filter.PageSize)
}

// GetUnit godoc
//
//	@Summary		Get unit by ID
//	@Tags			units
//	@Produce		json
//	@Param			id	path		string	true	"Unit ID"
//	@Success		200	{object}	APIResponse[property.UnitResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid unit ID")
		return
	}

	unit, err := h.service.GetUnit(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// CreateUnit godoc
//
//	@Summary		Create unit
//	@Description	Create a new property unit in AVAILABLE status
//	@Tags			units
//	@Accept			json
//	@Produce		json
//	@Param			request	body		property.CreateUnitRequest	true	"Unit creation request"
//	@Success		201		{object}	APIResponse[property.UnitResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req property.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.service.CreateUnit(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, unit)
}

// UpdateUnit godoc
//
//	@Summary		Update unit
//	@Description	Update a unit's descriptive fields. The status is driven by the contract lifecycle, not by this endpoint.
//	@Tags			units
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Unit ID"
//	@Param			request	body		property.UpdateUnitRequest	true	"Unit update request"
//	@Success		200		{object}	APIResponse[property.UnitResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/units/{id} [put]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid unit ID")
		return
	}

	var req property.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.service.UpdateUnit(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// SellUnit godoc
//
//	@Summary		Mark unit sold
//	@Description	Mark a reserved unit as sold. Normally triggered automatically when the last installment is paid.
//	@Tags			units
//	@Produce		json
//	@Param			id	path		string	true	"Unit ID"
//	@Success		200	{object}	APIResponse[property.UnitResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/units/{id}/sell [post]
func (h *UnitHandler) SellUnit(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid unit ID")
		return
	}

	unit, err := h.service.SellUnit(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// DeleteUnit godoc
//
//	@Summary		Delete unit
//	@Description	Delete a unit. Fails if the unit has contracts or vouchers referencing it.
//	@Tags			units
//	@Param			id	path	string	true	"Unit ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid unit ID")
		return
	}

	if err := h.service.DeleteUnit(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all unit routes
func (h *UnitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/units")
	{
		units.GET("", h.ListUnits)
		units.GET("/:id", h.GetUnit)
		units.POST("", h.CreateUnit)
		units.PUT("/:id", h.UpdateUnit)
		units.POST("/:id/sell", h.SellUnit)
		units.DELETE("/:id", h.DeleteUnit)
	}
}
