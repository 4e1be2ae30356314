package handler

import (
	"net/http"

	partnerapp "github.com/estateops/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartnerHandler handles business partner and partner debt API endpoints
type PartnerHandler struct {
	BaseHandler
	service *partnerapp.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(service *partnerapp.PartnerService) *PartnerHandler {
	return &PartnerHandler{service: service}
}

// ListPartners godoc
//
//	@Summary		List partners
//	@Tags			partners
//	@Produce		json
//	@Param			search		query		string	false	"Search in name and phone"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]partnerapp.PartnerResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partners [get]
func (h *PartnerHandler) ListPartners(c *gin.Context) {
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

	partners, total, err := h.service.ListPartners(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, partners, total, filter.Page, filter.PageSize)
}

// GetPartner godoc
//
//	@Summary		Get partner by ID
//	@Tags			partners
//	@Produce		json
//	@Param			id	path		string	true	"Partner ID"
//	@Success		200	{object}	APIResponse[partnerapp.PartnerResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partners/{id} [get]
func (h *PartnerHandler) GetPartner(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid partner ID")
		return
	}

	partner, err := h.service.GetPartner(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, partner)
}

// CreatePartner godoc
//
//	@Summary		Create partner
//	@Tags			partners
//	@Accept			json
//	@Produce		json
//	@Param			request	body		partnerapp.PartnerRequest	true	"Partner creation request"
//	@Success		201		{object}	APIResponse[partnerapp.PartnerResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partners [post]
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req partnerapp.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	partner, err := h.service.CreatePartner(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, partner)
}

// UpdatePartner godoc
//
//	@Summary		Update partner
//	@Tags			partners
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Partner ID"
//	@Param			request	body		partnerapp.PartnerRequest	true	"Partner update request"
//	@Success		200		{object}	APIResponse[partnerapp.PartnerResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partners/{id} [put]
func (h *PartnerHandler) UpdatePartner(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid partner ID")
		return
	}

	var req partnerapp.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	partner, err := h.service.UpdatePartner(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, partner)
}

// DeletePartner godoc
//
//	@Summary		Delete partner
//	@Description	Delete a partner. Fails if the partner has unsettled debts.
//	@Tags			partners
//	@Param			id	path	string	true	"Partner ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partners/{id} [delete]
func (h *PartnerHandler) DeletePartner(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid partner ID")
		return
	}

	if err := h.service.DeletePartner(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListPartnerDebts godoc
//
//	@Summary		List partner debts
//	@Tags			partners
//	@Produce		json
//	@Param			id	path		string	true	"Partner ID"
//	@Success		200	{object}	APIResponse[[]partnerapp.PartnerDebtResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partners/{id}/debts [get]
func (h *PartnerHandler) ListPartnerDebts(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid partner ID")
		return
	}

	debts, err := h.service.ListPartnerDebts(c.Request.Context(), tenantID, partnerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, debts)
}

// CreatePartnerDebt godoc
//
//	@Summary		Create partner debt
//	@Description	Record a debt owed to a partner
//	@Tags			partners
//	@Accept			json
//	@Produce		json
//	@Param			request	body		partnerapp.CreatePartnerDebtRequest	true	"Partner debt creation request"
//	@Success		201		{object}	APIResponse[partnerapp.PartnerDebtResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partner-debts [post]
func (h *PartnerHandler) CreatePartnerDebt(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req partnerapp.CreatePartnerDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	debt, err := h.service.CreatePartnerDebt(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, debt)
}

// SettlePartnerDebt godoc
//
//	@Summary		Settle partner debt
//	@Description	Mark an open partner debt as settled
//	@Tags			partners
//	@Produce		json
//	@Param			id	path		string	true	"Partner debt ID"
//	@Success		200	{object}	APIResponse[partnerapp.PartnerDebtResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partner-debts/{id}/settle [post]
func (h *PartnerHandler) SettlePartnerDebt(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid partner debt ID")
		return
	}

	debt, err := h.service.SettlePartnerDebt(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, debt)
}

// DeletePartnerDebt godoc
//
//	@Summary		Delete partner debt
//	@Tags			partners
//	@Param			id	path	string	true	"Partner debt ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/partner-debts/{id} [delete]
func (h *PartnerHandler) DeletePartnerDebt(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid partner debt ID")
		return
	}

	if err := h.service.DeletePartnerDebt(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all partner routes
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/partners")
	{
		partners.GET("", h.ListPartners)
		partners.GET("/:id", h.GetPartner)
		partners.POST("", h.CreatePartner)
		partners.PUT("/:id", h.UpdatePartner)
		partners.DELETE("/:id", h.DeletePartner)
		partners.GET("/:id/debts", h.ListPartnerDebts)
	}

	debts := rg.Group("/partner-debts")
	{
		debts.POST("", h.CreatePartnerDebt)
		debts.POST("/:id/settle", h.SettlePartnerDebt)
		debts.DELETE("/:id", h.DeletePartnerDebt)
	}
}
