package persistence

import (
	"context"
	"errors"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSafeRepository implements SafeRepository using GORM
type GormSafeRepository struct {
	db *gorm.DB
}

// NewGormSafeRepository creates a new GormSafeRepository
func NewGormSafeRepository(db *gorm.DB) *GormSafeRepository {
	return &GormSafeRepository{db: db}
}

// FindByID finds a safe by ID
func (r *GormSafeRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Safe, error) {
	var model models.SafeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a safe by ID for a specific tenant
func (r *GormSafeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*treasury.Safe, error) {
	var model models.SafeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a safe by name for a tenant
func (r *GormSafeRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*treasury.Safe, error) {
	var model models.SafeModel
	if err := r.db.WithContext(ctx).First(&model, "name = ? AND tenant_id = ?", name, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists safes for a tenant with pagination
func (r *GormSafeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, page, pageSize int) ([]treasury.Safe, error) {
	var safeModels []models.SafeModel
	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at ASC")
	if pageSize > 0 {
		query = query.Limit(pageSize)
		if page > 0 {
			query = query.Offset((page - 1) * pageSize)
		}
	}
	if err := query.Find(&safeModels).Error; err != nil {
		return nil, err
	}
	safes := make([]treasury.Safe, len(safeModels))
	for i, model := range safeModels {
		safes[i] = *model.ToDomain()
	}
	return safes, nil
}

// CountForTenant counts safes for a tenant
func (r *GormSafeRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SafeModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a safe
func (r *GormSafeRepository) Save(ctx context.Context, safe *treasury.Safe) error {
	model := models.SafeModelFromDomain(safe)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a safe for a tenant
func (r *GormSafeRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.SafeModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// ExistsByName checks if a safe name exists for a tenant
func (r *GormSafeRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SafeModel{}).
		Where("tenant_id = ? AND name = ?", tenantID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AdjustBalance applies `balance = balance + delta` as a single atomic UPDATE.
// Concurrent ledger writers therefore cannot lose updates regardless of
// interleaving; the surrounding transaction makes the ledger row and the
// balance move commit together.
func (r *GormSafeRepository) AdjustBalance(ctx context.Context, tenantID, id uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.SafeModel{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// TotalBalance sums all safe balances for a tenant
func (r *GormSafeRepository) TotalBalance(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.SafeModel{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("tenant_id = ?", tenantID).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// Ensure GormSafeRepository implements the interface
var _ treasury.SafeRepository = (*GormSafeRepository)(nil)
