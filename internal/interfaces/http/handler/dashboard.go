package handler

import (
	"github.com/estateops/backend/internal/application/report"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler handles the dashboard summary API endpoint
type DashboardHandler struct {
	BaseHandler
	service *report.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *report.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetSummary godoc
//
//	@Summary		Dashboard summary
//	@Description	Get aggregate counters for the dashboard: safe balances, unit counts by status, due and overdue installments
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	APIResponse[report.DashboardResponse]
//	@Security		BearerAuth
//	@Router			/dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.GetSummary)
}
