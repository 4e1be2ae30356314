package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormVoucherRepository implements VoucherRepository using GORM
type GormVoucherRepository struct {
	db *gorm.DB
}

// NewGormVoucherRepository creates a new GormVoucherRepository
func NewGormVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db}
}

// FindByID finds a voucher by ID
func (r *GormVoucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Voucher, error) {
	var model models.VoucherModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a voucher by ID for a specific tenant
func (r *GormVoucherRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*treasury.Voucher, error) {
	var model models.VoucherModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func applyVoucherFilter(query *gorm.DB, filter treasury.VoucherFilter) *gorm.DB {
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.SafeID != nil {
		query = query.Where("safe_id = ?", *filter.SafeID)
	}
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.FromDate != nil {
		query = query.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("date <= ?", *filter.ToDate)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("description LIKE ? OR payer LIKE ? OR beneficiary LIKE ?", pattern, pattern, pattern)
	}
	return query
}

// FindAllForTenant finds all vouchers for a tenant with filtering
func (r *GormVoucherRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter treasury.VoucherFilter) ([]treasury.Voucher, error) {
	var voucherModels []models.VoucherModel
	query := applyVoucherFilter(r.db.WithContext(ctx).Where("tenant_id = ?", tenantID), filter).
		Order("date DESC, created_at DESC")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Find(&voucherModels).Error; err != nil {
		return nil, err
	}
	vouchers := make([]treasury.Voucher, len(voucherModels))
	for i, model := range voucherModels {
		vouchers[i] = *model.ToDomain()
	}
	return vouchers, nil
}

// CountForTenant counts vouchers for a tenant with filtering
func (r *GormVoucherRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter treasury.VoucherFilter) (int64, error) {
	var count int64
	query := applyVoucherFilter(
		r.db.WithContext(ctx).Model(&models.VoucherModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a voucher
func (r *GormVoucherRepository) Save(ctx context.Context, voucher *treasury.Voucher) error {
	model := models.VoucherModelFromDomain(voucher)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a voucher for a tenant
func (r *GormVoucherRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.VoucherModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// CountBySafe counts non-deleted vouchers referencing a safe
func (r *GormVoucherRepository) CountBySafe(ctx context.Context, tenantID, safeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.VoucherModel{}).
		Where("tenant_id = ? AND safe_id = ?", tenantID, safeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumByType totals non-deleted voucher amounts of one type within an optional date range
func (r *GormVoucherRepository) SumByType(ctx context.Context, tenantID uuid.UUID, voucherType treasury.VoucherType, from, to *time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := r.db.WithContext(ctx).
		Model(&models.VoucherModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("tenant_id = ? AND type = ?", tenantID, voucherType)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}
	if err := query.Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// Ensure GormVoucherRepository implements the interface
var _ treasury.VoucherRepository = (*GormVoucherRepository)(nil)
