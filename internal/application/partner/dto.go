package partner

import (
	"time"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	Address    string    `json:"address,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Version    int       `json:"version"`
}

func toCustomerResponse(customer *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:         customer.ID,
		TenantID:   customer.TenantID,
		Name:       customer.Name,
		Phone:      customer.Phone,
		NationalID: customer.NationalID,
		Address:    customer.Address,
		Notes:      customer.Notes,
		CreatedAt:  customer.CreatedAt,
		UpdatedAt:  customer.UpdatedAt,
		Version:    customer.Version,
	}
}

// CustomerRequest carries customer fields for create and update
type CustomerRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	Notes      string `json:"notes"`
}

// BrokerResponse represents a broker in API responses
type BrokerResponse struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	DefaultPercent decimal.Decimal `json:"default_percent"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

func toBrokerResponse(broker *partner.Broker) *BrokerResponse {
	return &BrokerResponse{
		ID:             broker.ID,
		TenantID:       broker.TenantID,
		Name:           broker.Name,
		Phone:          broker.Phone,
		DefaultPercent: broker.DefaultPercent,
		Notes:          broker.Notes,
		CreatedAt:      broker.CreatedAt,
		UpdatedAt:      broker.UpdatedAt,
		Version:        broker.Version,
	}
}

// BrokerRequest carries broker fields for create and update
type BrokerRequest struct {
	Name           string          `json:"name" binding:"required,max=200"`
	Phone          string          `json:"phone"`
	DefaultPercent decimal.Decimal `json:"default_percent"`
	Notes          string          `json:"notes"`
}

// BrokerDueResponse represents a broker commission in API responses
type BrokerDueResponse struct {
	ID         uuid.UUID       `json:"id"`
	TenantID   uuid.UUID       `json:"tenant_id"`
	BrokerID   uuid.UUID       `json:"broker_id"`
	ContractID uuid.UUID       `json:"contract_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Version    int             `json:"version"`
}

func toBrokerDueResponse(due *partner.BrokerDue) *BrokerDueResponse {
	return &BrokerDueResponse{
		ID:         due.ID,
		TenantID:   due.TenantID,
		BrokerID:   due.BrokerID,
		ContractID: due.ContractID,
		Amount:     due.Amount,
		Status:     string(due.Status),
		Notes:      due.Notes,
		CreatedAt:  due.CreatedAt,
		UpdatedAt:  due.UpdatedAt,
		Version:    due.Version,
	}
}

// PartnerResponse represents a partner in API responses
type PartnerResponse struct {
	ID           uuid.UUID       `json:"id"`
	TenantID     uuid.UUID       `json:"tenant_id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone,omitempty"`
	SharePercent decimal.Decimal `json:"share_percent"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

func toPartnerResponse(p *partner.Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:           p.ID,
		TenantID:     p.TenantID,
		Name:         p.Name,
		Phone:        p.Phone,
		SharePercent: p.SharePercent,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Version:      p.Version,
	}
}

// PartnerRequest carries partner fields for create and update
type PartnerRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Phone        string          `json:"phone"`
	SharePercent decimal.Decimal `json:"share_percent"`
	Notes        string          `json:"notes"`
}

// PartnerDebtResponse represents a partner debt in API responses
type PartnerDebtResponse struct {
	ID        uuid.UUID       `json:"id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	PartnerID uuid.UUID       `json:"partner_id"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"due_date"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

func toPartnerDebtResponse(debt *partner.PartnerDebt) *PartnerDebtResponse {
	return &PartnerDebtResponse{
		ID:        debt.ID,
		TenantID:  debt.TenantID,
		PartnerID: debt.PartnerID,
		Amount:    debt.Amount,
		DueDate:   debt.DueDate,
		Status:    string(debt.Status),
		Notes:     debt.Notes,
		CreatedAt: debt.CreatedAt,
		UpdatedAt: debt.UpdatedAt,
		Version:   debt.Version,
	}
}

// CreatePartnerDebtRequest represents a request to record a partner debt
type CreatePartnerDebtRequest struct {
	PartnerID uuid.UUID       `json:"partner_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required,dgt0"`
	DueDate   time.Time       `json:"due_date" binding:"required"`
	Notes     string          `json:"notes"`
}

// ListFilter defines common filtering options for partner-side list queries
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (f ListFilter) toDomain() partner.ListFilter {
	return partner.ListFilter{
		Search:   f.Search,
		Page:     f.Page,
		PageSize: f.PageSize,
	}
}
