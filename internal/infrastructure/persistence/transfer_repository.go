package persistence

import (
	"context"
	"errors"

	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransferRepository implements TransferRepository using GORM
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GormTransferRepository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// FindByID finds a transfer by ID
func (r *GormTransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Transfer, error) {
	var model models.TransferModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a transfer by ID for a specific tenant
func (r *GormTransferRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*treasury.Transfer, error) {
	var model models.TransferModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func applyTransferFilter(query *gorm.DB, filter treasury.TransferFilter) *gorm.DB {
	if filter.SafeID != nil {
		query = query.Where("from_safe_id = ? OR to_safe_id = ?", *filter.SafeID, *filter.SafeID)
	}
	if filter.FromDate != nil {
		query = query.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("created_at <= ?", *filter.ToDate)
	}
	return query
}

// FindAllForTenant finds all transfers for a tenant with filtering
func (r *GormTransferRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter treasury.TransferFilter) ([]treasury.Transfer, error) {
	var transferModels []models.TransferModel
	query := applyTransferFilter(r.db.WithContext(ctx).Where("tenant_id = ?", tenantID), filter).
		Order("created_at DESC")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Find(&transferModels).Error; err != nil {
		return nil, err
	}
	transfers := make([]treasury.Transfer, len(transferModels))
	for i, model := range transferModels {
		transfers[i] = *model.ToDomain()
	}
	return transfers, nil
}

// CountForTenant counts transfers for a tenant with filtering
func (r *GormTransferRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter treasury.TransferFilter) (int64, error) {
	var count int64
	query := applyTransferFilter(
		r.db.WithContext(ctx).Model(&models.TransferModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a transfer
func (r *GormTransferRepository) Save(ctx context.Context, transfer *treasury.Transfer) error {
	model := models.TransferModelFromDomain(transfer)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a transfer for a tenant
func (r *GormTransferRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TransferModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// CountBySafe counts non-deleted transfers touching a safe on either side
func (r *GormTransferRepository) CountBySafe(ctx context.Context, tenantID, safeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TransferModel{}).
		Where("tenant_id = ? AND (from_safe_id = ? OR to_safe_id = ?)", tenantID, safeID, safeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormTransferRepository implements the interface
var _ treasury.TransferRepository = (*GormTransferRepository)(nil)
