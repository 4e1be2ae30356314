package treasury

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherFilter defines filtering options for voucher queries
type VoucherFilter struct {
	Type     *VoucherType
	SafeID   *uuid.UUID
	UnitID   *uuid.UUID
	FromDate *time.Time
	ToDate   *time.Time
	Search   string
	Page     int
	PageSize int
}

// TransferFilter defines filtering options for transfer queries
type TransferFilter struct {
	SafeID   *uuid.UUID // matches either side of the transfer
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	PageSize int
}

// SafeRepository persists Safe aggregates.
// AdjustBalance is the only balance mutation path: it issues an atomic
// in-place increment so concurrent ledger writes cannot lose updates.
type SafeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Safe, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Safe, error)
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*Safe, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, page, pageSize int) ([]Safe, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	Save(ctx context.Context, safe *Safe) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error)
	// AdjustBalance applies `balance = balance + delta` to the safe row.
	AdjustBalance(ctx context.Context, tenantID, id uuid.UUID, delta decimal.Decimal) error
	TotalBalance(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, error)
}

// VoucherRepository persists Voucher aggregates
type VoucherRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Voucher, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Voucher, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter VoucherFilter) ([]Voucher, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter VoucherFilter) (int64, error)
	Save(ctx context.Context, voucher *Voucher) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	CountBySafe(ctx context.Context, tenantID, safeID uuid.UUID) (int64, error)
	// SumByType totals non-deleted voucher amounts of one type, optionally
	// bounded by date, for dashboards and the ledger consistency check.
	SumByType(ctx context.Context, tenantID uuid.UUID, voucherType VoucherType, from, to *time.Time) (decimal.Decimal, error)
}

// TransferRepository persists Transfer aggregates
type TransferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transfer, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Transfer, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter TransferFilter) ([]Transfer, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter TransferFilter) (int64, error)
	Save(ctx context.Context, transfer *Transfer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	CountBySafe(ctx context.Context, tenantID, safeID uuid.UUID) (int64, error)
}
