package handler

import (
	"github.com/estateops/backend/internal/application/system"
	"github.com/estateops/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SystemHandler handles system import and reset API endpoints
type SystemHandler struct {
	BaseHandler
	service *system.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(service *system.SystemService) *SystemHandler {
	return &SystemHandler{service: service}
}

// Import godoc
//
//	@Summary		Import tenant data
//	@Description	Bulk import a full tenant snapshot. Records are upserted by ID in dependency order inside one transaction.
//	@Tags			system
//	@Accept			json
//	@Produce		json
//	@Param			request	body		system.ImportPayload	true	"Snapshot payload"
//	@Success		200		{object}	APIResponse[system.ImportResult]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/system/import [post]
func (h *SystemHandler) Import(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var payload system.ImportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Import(c.Request.Context(), tenantID, &payload)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Reset godoc
//
//	@Summary		Reset tenant data
//	@Description	Delete all business data for the tenant. Irreversible.
//	@Tags			system
//	@Success		204
//	@Failure		403	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/system/reset [post]
func (h *SystemHandler) Reset(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	if err := h.service.Reset(c.Request.Context(), tenantID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all system routes. Both endpoints require the
// admin claim.
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sys := rg.Group("/system", middleware.RequireAdmin())
	{
		sys.POST("/import", h.Import)
		sys.POST("/reset", h.Reset)
	}
}
