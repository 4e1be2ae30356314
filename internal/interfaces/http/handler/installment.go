package handler

import (
	"net/http"

	"github.com/estateops/backend/internal/application/sales"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InstallmentHandler handles installment API endpoints
type InstallmentHandler struct {
	BaseHandler
	service *sales.InstallmentService
}

// NewInstallmentHandler creates a new InstallmentHandler
func NewInstallmentHandler(service *sales.InstallmentService) *InstallmentHandler {
	return &InstallmentHandler{service: service}
}

// ListInstallments godoc
//
//	@Summary		List installments
//	@Description	Get a paginated list of installments, optionally filtered by contract, unit, status or due date range
//	@Tags			installments
//	@Produce		json
//	@Param			contract_id	query		string	false	"Filter by contract"
//	@Param			unit_id		query		string	false	"Filter by unit"
//	@Param			status		query		string	false	"Filter by status"	Enums(PENDING, PAID)
//	@Param			due_before	query		string	false	"Due before date (YYYY-MM-DD)"
//	@Param			due_after	query		string	false	"Due after date (YYYY-MM-DD)"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]sales.InstallmentResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/installments [get]
func (h *InstallmentHandler) ListInstallments(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var filter sales.InstallmentListFilter
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

	installments, total, err := h.service.ListInstallments(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, installments, total, filter.Page, filter.PageSize)
}

// GetInstallment godoc
//
//	@Summary		Get installment by ID
//	@Tags			installments
//	@Produce		json
//	@Param			id	path		string	true	"Installment ID"
//	@Success		200	{object}	APIResponse[sales.InstallmentResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/installments/{id} [get]
func (h *InstallmentHandler) GetInstallment(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid installment ID")
		return
	}

	installment, err := h.service.GetInstallment(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, installment)
}

// CreateInstallment godoc
//
//	@Summary		Create installment
//	@Description	Append an extra installment to an existing contract's schedule
//	@Tags			installments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sales.CreateInstallmentRequest	true	"Installment creation request"
//	@Success		201		{object}	APIResponse[sales.InstallmentResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/installments [post]
func (h *InstallmentHandler) CreateInstallment(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req sales.CreateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	installment, err := h.service.CreateInstallment(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, installment)
}

// UpdateInstallment godoc
//
//	@Summary		Update installment
//	@Description	Edit a pending installment's amount, due date or notes. Paid installments are immutable.
//	@Tags			installments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Installment ID"
//	@Param			request	body		sales.UpdateInstallmentRequest	true	"Installment update request"
//	@Success		200		{object}	APIResponse[sales.InstallmentResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/installments/{id} [put]
func (h *InstallmentHandler) UpdateInstallment(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid installment ID")
		return
	}

	var req sales.UpdateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	installment, err := h.service.UpdateInstallment(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, installment)
}

// PatchStatus godoc
//
//	@Summary		Mark installment paid or pending
//	@Description	Flip an installment between PENDING and PAID. Marking paid posts a receipt voucher into the given safe and marks the unit sold when the schedule completes.
//	@Tags			installments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Installment ID"
//	@Param			request	body		sales.PatchInstallmentStatusRequest	true	"Status change request"
//	@Success		200		{object}	APIResponse[sales.InstallmentResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/installments/{id}/status [patch]
func (h *InstallmentHandler) PatchStatus(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid installment ID")
		return
	}

	var req sales.PatchInstallmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	installment, err := h.service.PatchStatus(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, installment)
}

// DeleteInstallment godoc
//
//	@Summary		Delete installment
//	@Description	Delete a pending installment. Paid installments cannot be deleted.
//	@Tags			installments
//	@Param			id	path	string	true	"Installment ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/installments/{id} [delete]
func (h *InstallmentHandler) DeleteInstallment(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid installment ID")
		return
	}

	if err := h.service.DeleteInstallment(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all installment routes
func (h *InstallmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	installments := rg.Group("/installments")
	{
		installments.GET("", h.ListInstallments)
		installments.GET("/:id", h.GetInstallment)
		installments.POST("", h.CreateInstallment)
		installments.PUT("/:id", h.UpdateInstallment)
		installments.PATCH("/:id/status", h.PatchStatus)
		installments.DELETE("/:id", h.DeleteInstallment)
	}
}
