package handler

import (
	"net/http"

	"github.com/estateops/backend/internal/application/treasury"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles safe-to-safe transfer API endpoints
type TransferHandler struct {
	BaseHandler
	service *treasury.TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(service *treasury.TransferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// ListTransfers godoc
//
//	@Summary		List transfers
//	@Description	Get a paginated list of safe-to-safe transfers
//	@Tags			transfers
//	@Produce		json
//	@Param			safe_id		query		string	false	"Filter by safe (either side)"
//	@Param			from_date	query		string	false	"Filter from date (YYYY-MM-DD)"
//	@Param			to_date		query		string	false	"Filter to date (YYYY-MM-DD)"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]treasury.TransferResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/transfers [get]
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var filter treasury.TransferListFilter
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

	transfers, total, err := h.service.ListTransfers(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, transfers, total, filter.Page, filter.PageSize)
}

// GetTransfer godoc
//
//	@Summary		Get transfer by ID
//	@Tags			transfers
//	@Produce		json
//	@Param			id	path		string	true	"Transfer ID"
//	@Success		200	{object}	APIResponse[treasury.TransferResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/transfers/{id} [get]
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid transfer ID")
		return
	}

	transfer, err := h.service.GetTransfer(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfer)
}

// CreateTransfer godoc
//
//	@Summary		Create transfer
//	@Description	Move money between two safes, debiting one and crediting the other in one transaction. Send an Idempotency-Key header to make the call safe to retry.
//	@Tags			transfers
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string							false	"Idempotency key"
//	@Param			request			body		treasury.CreateTransferRequest	true	"Transfer creation request"
//	@Success		201				{object}	APIResponse[treasury.TransferResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/transfers [post]
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req treasury.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.IdempotencyKey = c.GetHeader(IdempotencyKeyHeader)

	transfer, err := h.service.CreateTransfer(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, transfer)
}

// UpdateTransfer godoc
//
//	@Summary		Update transfer
//	@Description	Edit a transfer's amount or description. An amount change adjusts both safe balances by the difference.
//	@Tags			transfers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Transfer ID"
//	@Param			request	body		treasury.UpdateTransferRequest	true	"Transfer update request"
//	@Success		200		{object}	APIResponse[treasury.TransferResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/transfers/{id} [put]
func (h *TransferHandler) UpdateTransfer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid transfer ID")
		return
	}

	var req treasury.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transfer, err := h.service.UpdateTransfer(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfer)
}

// DeleteTransfer godoc
//
//	@Summary		Delete transfer
//	@Description	Delete a transfer and return the money to the source safe in one transaction.
//	@Tags			transfers
//	@Param			id	path	string	true	"Transfer ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/transfers/{id} [delete]
func (h *TransferHandler) DeleteTransfer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid transfer ID")
		return
	}

	if err := h.service.DeleteTransfer(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all transfer routes
func (h *TransferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transfers := rg.Group("/transfers")
	{
		transfers.GET("", h.ListTransfers)
		transfers.GET("/:id", h.GetTransfer)
		transfers.POST("", h.CreateTransfer)
		transfers.PUT("/:id", h.UpdateTransfer)
		transfers.DELETE("/:id", h.DeleteTransfer)
	}
}
