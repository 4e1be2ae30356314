package handler

import (
	"net/http"

	partnerapp "github.com/estateops/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BrokerHandler handles broker and broker due API endpoints
type BrokerHandler struct {
	BaseHandler
	service *partnerapp.BrokerService
}

// NewBrokerHandler creates a new BrokerHandler
func NewBrokerHandler(service *partnerapp.BrokerService) *BrokerHandler {
	return &BrokerHandler{service: service}
}

// ListBrokers godoc
//
//	@Summary		List brokers
//	@Tags			brokers
//	@Produce		json
//	@Param			search		query		string	false	"Search in name and phone"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]partnerapp.BrokerResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/brokers [get]
func (h *BrokerHandler) ListBrokers(c *gin.Context) {
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

	brokers, total, err := h.service.ListBrokers(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, brokers, total, filter.Page, filter.PageSize)
}

// GetBroker godoc
//
//	@Summary		Get broker by ID
//	@Tags			brokers
//	@Produce		json
//	@Param			id	path		string	true	"Broker ID"
//	@Success		200	{object}	APIResponse[partnerapp.BrokerResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/brokers/{id} [get]
func (h *BrokerHandler) GetBroker(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid broker ID")
		return
	}

	broker, err := h.service.GetBroker(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, broker)
}

// CreateBroker godoc
//
//	@Summary		Create broker
//	@Tags			brokers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		partnerapp.BrokerRequest	true	"Broker creation request"
//	@Success		201		{object}	APIResponse[partnerapp.BrokerResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/brokers [post]
func (h *BrokerHandler) CreateBroker(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req partnerapp.BrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	broker, err := h.service.CreateBroker(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, broker)
}

// UpdateBroker godoc
//
//	@Summary		Update broker
//	@Tags			brokers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Broker ID"
//	@Param			request	body		partnerapp.BrokerRequest	true	"Broker update request"
//	@Success		200		{object}	APIResponse[partnerapp.BrokerResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/brokers/{id} [put]
func (h *BrokerHandler) UpdateBroker(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid broker ID")
		return
	}

	var req partnerapp.BrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	broker, err := h.service.UpdateBroker(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, broker)
}

// DeleteBroker godoc
//
//	@Summary		Delete broker
//	@Description	Delete a broker. Fails if the broker has contracts or unpaid dues.
//	@Tags			brokers
//	@Param			id	path	string	true	"Broker ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/brokers/{id} [delete]
func (h *BrokerHandler) DeleteBroker(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid broker ID")
		return
	}

	if err := h.service.DeleteBroker(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListBrokerDues godoc
//
//	@Summary		List broker dues
//	@Description	List the commission dues recorded for a broker
//	@Tags			brokers
//	@Produce		json
//	@Param			id	path		string	true	"Broker ID"
//	@Success		200	{object}	APIResponse[[]partnerapp.BrokerDueResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/brokers/{id}/dues [get]
func (h *BrokerHandler) ListBrokerDues(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	brokerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid broker ID")
		return
	}

	dues, err := h.service.ListBrokerDues(c.Request.Context(), tenantID, brokerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dues)
}

// PayBrokerDue godoc
//
//	@Summary		Pay broker due
//	@Description	Mark a pending broker due as paid
//	@Tags			brokers
//	@Produce		json
//	@Param			id	path		string	true	"Broker due ID"
//	@Success		200	{object}	APIResponse[partnerapp.BrokerDueResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/broker-dues/{id}/pay [post]
func (h *BrokerHandler) PayBrokerDue(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil || tenantID == uuid.Nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid broker due ID")
		return
	}

	due, err := h.service.PayBrokerDue(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, due)
}

// RegisterRoutes registers all broker routes
func (h *BrokerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	brokers := rg.Group("/brokers")
	{
		brokers.GET("", h.ListBrokers)
		brokers.GET("/:id", h.GetBroker)
		brokers.POST("", h.CreateBroker)
		brokers.PUT("/:id", h.UpdateBroker)
		brokers.DELETE("/:id", h.DeleteBroker)
		brokers.GET("/:id/dues", h.ListBrokerDues)
	}

	dues := rg.Group("/broker-dues")
	{
		dues.POST("/:id/pay", h.PayBrokerDue)
	}
}
