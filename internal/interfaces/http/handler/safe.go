package handler

import (
	"net/http"

	"github.com/estateops/backend/internal/application/treasury"
	"github.com/estateops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SafeHandler handles safe (cash till) related API endpoints
type SafeHandler struct {
	BaseHandler
	service *treasury.SafeService
}

// NewSafeHandler creates a new SafeHandler
func NewSafeHandler(service *treasury.SafeService) *SafeHandler {
	return &SafeHandler{service: service}
}

// ListSafes godoc
//
//	@Summary		List safes
//	@Description	Get a paginated list of safes with current balances
//	@Tags			safes
//	@Produce		json
//	@Param			page		query		int	false	"Page number"	default(1)
//	@Param			page_size	query		int	false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]treasury.SafeResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/safes [get]
func (h *SafeHandler) ListSafes(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		req = dto.DefaultListRequest()
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	safes, total, err := h.service.ListSafes(c.Request.Context(), tenantID, req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, safes, total, req.Page, req.PageSize)
}

// GetSafe godoc
//
//	@Summary		Get safe by ID
//	@Tags			safes
//	@Produce		json
//	@Param			id	path		string	true	"Safe ID"
//	@Success		200	{object}	APIResponse[treasury.SafeResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/safes/{id} [get]
func (h *SafeHandler) GetSafe(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid safe ID")
		return
	}

	safe, err := h.service.GetSafe(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, safe)
}

// CreateSafe godoc
//
//	@Summary		Create safe
//	@Description	Create a new safe with an optional opening balance
//	@Tags			safes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		treasury.CreateSafeRequest	true	"Safe creation request"
//	@Success		201		{object}	APIResponse[treasury.SafeResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/safes [post]
func (h *SafeHandler) CreateSafe(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req treasury.CreateSafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	safe, err := h.service.CreateSafe(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, safe)
}

// UpdateSafe godoc
//
//	@Summary		Update safe
//	@Description	Rename a safe or edit its notes. The balance is never set directly.
//	@Tags			safes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Safe ID"
//	@Param			request	body		treasury.UpdateSafeRequest	true	"Safe update request"
//	@Success		200		{object}	APIResponse[treasury.SafeResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/safes/{id} [put]
func (h *SafeHandler) UpdateSafe(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid safe ID")
		return
	}

	var req treasury.UpdateSafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	safe, err := h.service.UpdateSafe(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, safe)
}

// DeleteSafe godoc
//
//	@Summary		Delete safe
//	@Description	Delete a safe. Fails if the safe holds a balance or is referenced by vouchers or transfers.
//	@Tags			safes
//	@Param			id	path	string	true	"Safe ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/safes/{id} [delete]
func (h *SafeHandler) DeleteSafe(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid safe ID")
		return
	}

	if err := h.service.DeleteSafe(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all safe routes
func (h *SafeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	safes := rg.Group("/safes")
	{
		safes.GET("", h.ListSafes)
		safes.GET("/:id", h.GetSafe)
		safes.POST("", h.CreateSafe)
		safes.PUT("/:id", h.UpdateSafe)
		safes.DELETE("/:id", h.DeleteSafe)
	}
}
