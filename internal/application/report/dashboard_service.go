package report

import (
	"context"
	"time"

	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardResponse aggregates the landing-page figures
type DashboardResponse struct {
	TotalBalance        decimal.Decimal `json:"total_balance"`
	AvailableUnits      int64           `json:"available_units"`
	ReservedUnits       int64           `json:"reserved_units"`
	SoldUnits           int64           `json:"sold_units"`
	MonthReceipts       decimal.Decimal `json:"month_receipts"`
	MonthPayments       decimal.Decimal `json:"month_payments"`
	OverdueInstallments int64           `json:"overdue_installments"`
}

// DashboardService aggregates treasury, property and sales figures for the
// dashboard endpoint
type DashboardService struct {
	safeRepo        treasury.SafeRepository
	voucherRepo     treasury.VoucherRepository
	unitRepo        property.UnitRepository
	installmentRepo sales.InstallmentRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	safeRepo treasury.SafeRepository,
	voucherRepo treasury.VoucherRepository,
	unitRepo property.UnitRepository,
	installmentRepo sales.InstallmentRepository,
) *DashboardService {
	return &DashboardService{
		safeRepo:        safeRepo,
		voucherRepo:     voucherRepo,
		unitRepo:        unitRepo,
		installmentRepo: installmentRepo,
	}
}

// Summary builds the dashboard aggregates for a tenant
func (s *DashboardService) Summary(ctx context.Context, tenantID uuid.UUID) (*DashboardResponse, error) {
	totalBalance, err := s.safeRepo.TotalBalance(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	available, err := s.unitRepo.CountByStatus(ctx, tenantID, property.UnitStatusAvailable)
	if err != nil {
		return nil, err
	}
	reserved, err := s.unitRepo.CountByStatus(ctx, tenantID, property.UnitStatusReserved)
	if err != nil {
		return nil, err
	}
	sold, err := s.unitRepo.CountByStatus(ctx, tenantID, property.UnitStatusSold)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	receipts, err := s.voucherRepo.SumByType(ctx, tenantID, treasury.VoucherTypeReceipt, &monthStart, &monthEnd)
	if err != nil {
		return nil, err
	}
	payments, err := s.voucherRepo.SumByType(ctx, tenantID, treasury.VoucherTypePayment, &monthStart, &monthEnd)
	if err != nil {
		return nil, err
	}

	overdue, err := s.installmentRepo.CountOverdue(ctx, tenantID, now)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		TotalBalance:        totalBalance,
		AvailableUnits:      available,
		ReservedUnits:       reserved,
		SoldUnits:           sold,
		MonthReceipts:       receipts,
		MonthPayments:       payments,
		OverdueInstallments: overdue,
	}, nil
}
