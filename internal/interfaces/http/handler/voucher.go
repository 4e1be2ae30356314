package handler

import (
	"net/http"

	"github.com/estateops/backend/internal/application/treasury"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IdempotencyKeyHeader carries the client-chosen key that makes voucher and
// transfer creation safe to retry.
const IdempotencyKeyHeader = "Idempotency-Key"

// VoucherHandler handles receipt and payment voucher API endpoints
type VoucherHandler struct {
	BaseHandler
	service *treasury.VoucherService
}

// NewVoucherHandler creates a new VoucherHandler
func NewVoucherHandler(service *treasury.VoucherService) *VoucherHandler {
	return &VoucherHandler{service: service}
}

// ListVouchers godoc
//
//	@Summary		List vouchers
//	@Description	Get a paginated list of vouchers, optionally filtered by type, safe, unit or date range
//	@Tags			vouchers
//	@Produce		json
//	@Param			type		query		string	false	"Filter by voucher type"	Enums(RECEIPT, PAYMENT)
//	@Param			safe_id		query		string	false	"Filter by safe"
//	@Param			unit_id		query		string	false	"Filter by unit"
//	@Param			from_date	query		string	false	"Filter from date (YYYY-MM-DD)"
//	@Param			to_date		query		string	false	"Filter to date (YYYY-MM-DD)"
//	@Param			search		query		string	false	"Search in description, payer and beneficiary"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]treasury.VoucherResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/vouchers [get]
func (h *VoucherHandler) ListVouchers(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var filter treasury.VoucherListFilter
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

	vouchers, total, err := h.service.ListVouchers(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, vouchers, total, filter.Page, filter.PageSize)
}

// GetVoucher godoc
//
//	@Summary		Get voucher by ID
//	@Tags			vouchers
//	@Produce		json
//	@Param			id	path		string	true	"Voucher ID"
//	@Success		200	{object}	APIResponse[treasury.VoucherResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/vouchers/{id} [get]
func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid voucher ID")
		return
	}

	voucher, err := h.service.GetVoucher(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, voucher)
}

// CreateVoucher godoc
//
//	@Summary		Create voucher
//	@Description	Create a receipt or payment voucher and apply it to the safe balance in one transaction. Send an Idempotency-Key header to make the call safe to retry.
//	@Tags			vouchers
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string							false	"Idempotency key"
//	@Param			request			body		treasury.CreateVoucherRequest	true	"Voucher creation request"
//	@Success		201				{object}	APIResponse[treasury.VoucherResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/vouchers [post]
func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req treasury.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.IdempotencyKey = c.GetHeader(IdempotencyKeyHeader)

	voucher, err := h.service.CreateVoucher(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, voucher)
}

// UpdateVoucher godoc
//
//	@Summary		Update voucher
//	@Description	Edit a voucher. Changing the amount, type or safe reverses the old balance effect and applies the new one atomically.
//	@Tags			vouchers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Voucher ID"
//	@Param			request	body		treasury.UpdateVoucherRequest	true	"Voucher update request"
//	@Success		200		{object}	APIResponse[treasury.VoucherResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/vouchers/{id} [put]
func (h *VoucherHandler) UpdateVoucher(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid voucher ID")
		return
	}

	var req treasury.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	voucher, err := h.service.UpdateVoucher(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, voucher)
}

// DeleteVoucher godoc
//
//	@Summary		Delete voucher
//	@Description	Delete a voucher and reverse its effect on the safe balance in one transaction.
//	@Tags			vouchers
//	@Param			id	path	string	true	"Voucher ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/vouchers/{id} [delete]
func (h *VoucherHandler) DeleteVoucher(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid voucher ID")
		return
	}

	if err := h.service.DeleteVoucher(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all voucher routes
func (h *VoucherHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vouchers := rg.Group("/vouchers")
	{
		vouchers.GET("", h.ListVouchers)
		vouchers.GET("/:id", h.GetVoucher)
		vouchers.POST("", h.CreateVoucher)
		vouchers.PUT("/:id", h.UpdateVoucher)
		vouchers.DELETE("/:id", h.DeleteVoucher)
	}
}
