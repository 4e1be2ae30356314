package treasury

import (
	"time"

	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SafeResponse represents a safe in API responses
type SafeResponse struct {
	ID        uuid.UUID       `json:"id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

func toSafeResponse(safe *treasury.Safe) *SafeResponse {
	return &SafeResponse{
		ID:        safe.ID,
		TenantID:  safe.TenantID,
		Name:      safe.Name,
		Balance:   safe.Balance,
		Notes:     safe.Notes,
		CreatedAt: safe.CreatedAt,
		UpdatedAt: safe.UpdatedAt,
		Version:   safe.Version,
	}
}

// CreateSafeRequest represents a request to create a safe
type CreateSafeRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Notes          string          `json:"notes"`
}

// UpdateSafeRequest represents a request to update a safe
type UpdateSafeRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Notes string `json:"notes"`
}

// VoucherResponse represents a voucher in API responses
type VoucherResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Type        string          `json:"type"`
	TypeName    string          `json:"type_name"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	SafeID      uuid.UUID       `json:"safe_id"`
	UnitID      *uuid.UUID      `json:"unit_id,omitempty"`
	Description string          `json:"description"`
	Payer       string          `json:"payer,omitempty"`
	Beneficiary string          `json:"beneficiary,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

func toVoucherResponse(voucher *treasury.Voucher) *VoucherResponse {
	return &VoucherResponse{
		ID:          voucher.ID,
		TenantID:    voucher.TenantID,
		Type:        voucher.Type.String(),
		TypeName:    voucher.Type.DisplayName(),
		Date:        voucher.Date,
		Amount:      voucher.Amount,
		SafeID:      voucher.SafeID,
		UnitID:      voucher.UnitID,
		Description: voucher.Description,
		Payer:       voucher.Payer,
		Beneficiary: voucher.Beneficiary,
		CreatedAt:   voucher.CreatedAt,
		UpdatedAt:   voucher.UpdatedAt,
		Version:     voucher.Version,
	}
}

// CreateVoucherRequest represents a request to create a voucher
type CreateVoucherRequest struct {
	Type        string          `json:"type" binding:"required,oneof=RECEIPT PAYMENT"`
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	SafeID      uuid.UUID       `json:"safe_id" binding:"required"`
	UnitID      *uuid.UUID      `json:"unit_id"`
	Description string          `json:"description" binding:"required"`
	Payer       string          `json:"payer"`
	Beneficiary string          `json:"beneficiary"`
	// Set from the Idempotency-Key header, not from the request body
	IdempotencyKey string `json:"-"`
}

// UpdateVoucherRequest represents a partial voucher update; nil fields are unchanged
type UpdateVoucherRequest struct {
	Type        *string          `json:"type" binding:"omitempty,oneof=RECEIPT PAYMENT"`
	Date        *time.Time       `json:"date"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,dgt0"`
	SafeID      *uuid.UUID       `json:"safe_id"`
	UnitID      *uuid.UUID       `json:"unit_id"`
	Description *string          `json:"description"`
	Payer       *string          `json:"payer"`
	Beneficiary *string          `json:"beneficiary"`
}

// VoucherListFilter defines filtering options for voucher list queries
type VoucherListFilter struct {
	Type     string     `form:"type"`
	SafeID   *uuid.UUID `form:"safe_id"`
	UnitID   *uuid.UUID `form:"unit_id"`
	FromDate *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"to_date" time_format:"2006-01-02"`
	Search   string     `form:"search"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
}

func (f VoucherListFilter) toDomain() treasury.VoucherFilter {
	filter := treasury.VoucherFilter{
		SafeID:   f.SafeID,
		UnitID:   f.UnitID,
		FromDate: f.FromDate,
		ToDate:   f.ToDate,
		Search:   f.Search,
		Page:     f.Page,
		PageSize: f.PageSize,
	}
	if f.Type != "" {
		voucherType := treasury.VoucherType(f.Type)
		filter.Type = &voucherType
	}
	return filter
}

// TransferResponse represents a safe-to-safe transfer in API responses
type TransferResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	FromSafeID  uuid.UUID       `json:"from_safe_id"`
	ToSafeID    uuid.UUID       `json:"to_safe_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

func toTransferResponse(transfer *treasury.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:          transfer.ID,
		TenantID:    transfer.TenantID,
		FromSafeID:  transfer.FromSafeID,
		ToSafeID:    transfer.ToSafeID,
		Amount:      transfer.Amount,
		Description: transfer.Description,
		CreatedAt:   transfer.CreatedAt,
		UpdatedAt:   transfer.UpdatedAt,
		Version:     transfer.Version,
	}
}

// CreateTransferRequest represents a request to create a transfer
type CreateTransferRequest struct {
	FromSafeID  uuid.UUID       `json:"from_safe_id" binding:"required"`
	ToSafeID    uuid.UUID       `json:"to_safe_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description string          `json:"description"`
	// Set from the Idempotency-Key header, not from the request body
	IdempotencyKey string `json:"-"`
}

// UpdateTransferRequest represents a partial transfer update; nil fields are unchanged
type UpdateTransferRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,dgt0"`
	Description *string          `json:"description"`
}

// TransferListFilter defines filtering options for transfer list queries
type TransferListFilter struct {
	SafeID   *uuid.UUID `form:"safe_id"`
	FromDate *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"to_date" time_format:"2006-01-02"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
}

func (f TransferListFilter) toDomain() treasury.TransferFilter {
	return treasury.TransferFilter{
		SafeID:   f.SafeID,
		FromDate: f.FromDate,
		ToDate:   f.ToDate,
		Page:     f.Page,
		PageSize: f.PageSize,
	}
}
