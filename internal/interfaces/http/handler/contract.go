package handler

import (
	"net/http"

	"github.com/estateops/backend/internal/application/sales"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles sales contract API endpoints
type ContractHandler struct {
	BaseHandler
	service *sales.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(service *sales.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

// ListContracts godoc
//
//	@Summary		List contracts
//	@Description	Get a paginated list of sales contracts
//	@Tags			contracts
//	@Produce		json
//	@Param			unit_id		query		string	false	"Filter by unit"
//	@Param			customer_id	query		string	false	"Filter by customer"
//	@Param			broker_id	query		string	false	"Filter by broker"
//	@Param			from_date	query		string	false	"Filter from contract date (YYYY-MM-DD)"
//	@Param			to_date		query		string	false	"Filter to contract date (YYYY-MM-DD)"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]sales.ContractResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var filter sales.ContractListFilter
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

	contracts, total, err := h.service.ListContracts(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, contracts, total, filter.Page, filter.PageSize)
}

// GetContract godoc
//
//	@Summary		Get contract by ID
//	@Description	Get a single contract with its installment schedule
//	@Tags			contracts
//	@Produce		json
//	@Param			id	path		string	true	"Contract ID"
//	@Success		200	{object}	APIResponse[sales.ContractResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid contract ID")
		return
	}

	contract, err := h.service.GetContract(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contract)
}

// CreateContract godoc
//
//	@Summary		Create contract
//	@Description	Create a sales contract on an available unit. Reserves the unit, builds the installment schedule and records the broker commission in one transaction.
//	@Tags			contracts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sales.CreateContractRequest	true	"Contract creation request"
//	@Success		201		{object}	APIResponse[sales.ContractResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req sales.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contract, err := h.service.CreateContract(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, contract)
}

// DeleteContract godoc
//
//	@Summary		Delete contract
//	@Description	Delete a contract, its pending installments and pending broker dues, and return the unit to AVAILABLE. Fails if any installment has been paid.
//	@Tags			contracts
//	@Param			id	path	string	true	"Contract ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid contract ID")
		return
	}

	if err := h.service.DeleteContract(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all contract routes
func (h *ContractHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.ListContracts)
		contracts.GET("/:id", h.GetContract)
		contracts.POST("", h.CreateContract)
		contracts.DELETE("/:id", h.DeleteContract)
	}
}
