package handler

import (
	"github.com/estateops/backend/internal/application/report"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles report API endpoints
type ReportHandler struct {
	BaseHandler
	service *report.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *report.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RunReport godoc
//
//	@Summary		Run report
//	@Description	Run a named report. Known slugs are installments, payments and aging. Filters come from the query string on GET or the JSON body on POST.
//	@Tags			reports
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string	true	"Report slug"	Enums(installments, payments, aging)
//	@Param			unit_id	query		string	false	"Filter by unit"
//	@Param			from	query		string	false	"From date (YYYY-MM-DD)"
//	@Param			to		query		string	false	"To date (YYYY-MM-DD)"
//	@Param			status	query		string	false	"Filter by status"
//	@Param			q		query		string	false	"Search keyword"
//	@Success		200		{object}	APIResponse[any]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/{slug} [get]
func (h *ReportHandler) RunReport(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	slug := c.Param("slug")

	var query report.ReportQuery
	if c.Request.Method == "POST" {
		if err := c.ShouldBindJSON(&query); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	} else {
		if err := c.ShouldBindQuery(&query); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	result, err := h.service.Run(c.Request.Context(), tenantID, slug, query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/:slug", h.RunReport)
		reports.POST("/:slug", h.RunReport)
	}
}
