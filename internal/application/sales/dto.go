package sales

import (
	"time"

	"github.com/estateops/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractResponse represents a contract in API responses
type ContractResponse struct {
	ID               uuid.UUID       `json:"id"`
	TenantID         uuid.UUID       `json:"tenant_id"`
	UnitID           uuid.UUID       `json:"unit_id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	BrokerID         *uuid.UUID      `json:"broker_id,omitempty"`
	ContractDate     time.Time       `json:"contract_date"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	NetPrice         decimal.Decimal `json:"net_price"`
	BrokerPercent    decimal.Decimal `json:"broker_percent"`
	BrokerAmount     decimal.Decimal `json:"broker_amount"`
	InstallmentCount int             `json:"installment_count"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Version          int             `json:"version"`
}

func toContractResponse(contract *sales.Contract) *ContractResponse {
	return &ContractResponse{
		ID:               contract.ID,
		TenantID:         contract.TenantID,
		UnitID:           contract.UnitID,
		CustomerID:       contract.CustomerID,
		BrokerID:         contract.BrokerID,
		ContractDate:     contract.ContractDate,
		TotalPrice:       contract.TotalPrice,
		DiscountAmount:   contract.DiscountAmount,
		NetPrice:         contract.NetPrice(),
		BrokerPercent:    contract.BrokerPercent,
		BrokerAmount:     contract.BrokerAmount,
		InstallmentCount: contract.InstallmentCount,
		Notes:            contract.Notes,
		CreatedAt:        contract.CreatedAt,
		UpdatedAt:        contract.UpdatedAt,
		Version:          contract.Version,
	}
}

// CreateContractRequest represents a request to create a contract
type CreateContractRequest struct {
	UnitID           uuid.UUID        `json:"unit_id" binding:"required"`
	CustomerID       uuid.UUID        `json:"customer_id" binding:"required"`
	BrokerID         *uuid.UUID       `json:"broker_id"`
	ContractDate     time.Time        `json:"contract_date"`
	TotalPrice       decimal.Decimal  `json:"total_price" binding:"required,dgt0"`
	DiscountAmount   decimal.Decimal  `json:"discount_amount"`
	BrokerPercent    decimal.Decimal  `json:"broker_percent"`
	BrokerAmount     *decimal.Decimal `json:"broker_amount"`
	InstallmentCount int              `json:"installment_count"`
	Notes            string           `json:"notes"`
}

// ContractListFilter defines filtering options for contract list queries
type ContractListFilter struct {
	UnitID     *uuid.UUID `form:"unit_id"`
	CustomerID *uuid.UUID `form:"customer_id"`
	BrokerID   *uuid.UUID `form:"broker_id"`
	FromDate   *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate     *time.Time `form:"to_date" time_format:"2006-01-02"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
}

func (f ContractListFilter) toDomain() sales.ContractFilter {
	return sales.ContractFilter{
		UnitID:     f.UnitID,
		CustomerID: f.CustomerID,
		BrokerID:   f.BrokerID,
		FromDate:   f.FromDate,
		ToDate:     f.ToDate,
		Page:       f.Page,
		PageSize:   f.PageSize,
	}
}

// InstallmentResponse represents an installment in API responses
type InstallmentResponse struct {
	ID         uuid.UUID       `json:"id"`
	TenantID   uuid.UUID       `json:"tenant_id"`
	UnitID     uuid.UUID       `json:"unit_id"`
	ContractID uuid.UUID       `json:"contract_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	Status     string          `json:"status"`
	StatusName string          `json:"status_name"`
	Overdue    bool            `json:"overdue"`
	Notes      string          `json:"notes,omitempty"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Version    int             `json:"version"`
}

func toInstallmentResponse(installment *sales.Installment, now time.Time) *InstallmentResponse {
	return &InstallmentResponse{
		ID:         installment.ID,
		TenantID:   installment.TenantID,
		UnitID:     installment.UnitID,
		ContractID: installment.ContractID,
		Amount:     installment.Amount,
		DueDate:    installment.DueDate,
		Status:     installment.Status.String(),
		StatusName: installment.Status.DisplayName(),
		Overdue:    installment.IsOverdue(now),
		Notes:      installment.Notes,
		PaidAt:     installment.PaidAt,
		CreatedAt:  installment.CreatedAt,
		UpdatedAt:  installment.UpdatedAt,
		Version:    installment.Version,
	}
}

// CreateInstallmentRequest represents a request to add an installment manually
type CreateInstallmentRequest struct {
	ContractID uuid.UUID       `json:"contract_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required,dgt0"`
	DueDate    time.Time       `json:"due_date" binding:"required"`
	Notes      string          `json:"notes"`
}

// UpdateInstallmentRequest represents a request to edit a pending installment
type UpdateInstallmentRequest struct {
	Amount  *decimal.Decimal `json:"amount" binding:"omitempty,dgt0"`
	DueDate *time.Time       `json:"due_date"`
	Notes   *string          `json:"notes"`
}

// PatchInstallmentStatusRequest marks an installment paid or pending. When
// marking paid, SafeID optionally directs a receipt voucher into that safe.
type PatchInstallmentStatusRequest struct {
	Status string     `json:"status" binding:"required,oneof=PAID PENDING"`
	Notes  string     `json:"notes"`
	SafeID *uuid.UUID `json:"safe_id"`
}

// InstallmentListFilter defines filtering options for installment list queries
type InstallmentListFilter struct {
	UnitID     *uuid.UUID `form:"unit_id"`
	ContractID *uuid.UUID `form:"contract_id"`
	Status     string     `form:"status"`
	DueBefore  *time.Time `form:"due_before" time_format:"2006-01-02"`
	DueAfter   *time.Time `form:"due_after" time_format:"2006-01-02"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
}

func (f InstallmentListFilter) toDomain() sales.InstallmentFilter {
	filter := sales.InstallmentFilter{
		UnitID:     f.UnitID,
		ContractID: f.ContractID,
		DueBefore:  f.DueBefore,
		DueAfter:   f.DueAfter,
		Page:       f.Page,
		PageSize:   f.PageSize,
	}
	if f.Status != "" {
		status := sales.InstallmentStatus(f.Status)
		filter.Status = &status
	}
	return filter
}
