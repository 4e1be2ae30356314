package persistence

import (
	"context"
	"errors"

	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUnitRepository implements UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a unit by ID for a specific tenant
func (r *GormUnitRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*property.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a unit by its code for a tenant
func (r *GormUnitRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*property.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "code = ? AND tenant_id = ?", code, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func applyUnitFilter(query *gorm.DB, filter property.UnitFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.UnitType != "" {
		query = query.Where("unit_type = ?", filter.UnitType)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR name LIKE ? OR address LIKE ?", pattern, pattern, pattern)
	}
	return query
}

// FindAllForTenant finds all units for a tenant with filtering
func (r *GormUnitRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter property.UnitFilter) ([]property.Unit, error) {
	var unitModels []models.UnitModel
	query := applyUnitFilter(r.db.WithContext(ctx).Where("tenant_id = ?", tenantID), filter).
		Order("code ASC")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Find(&unitModels).Error; err != nil {
		return nil, err
	}
	units := make([]property.Unit, len(unitModels))
	for i, model := range unitModels {
		units[i] = *model.ToDomain()
	}
	return units, nil
}

// CountForTenant counts units for a tenant with filtering
func (r *GormUnitRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter property.UnitFilter) (int64, error) {
	var count int64
	query := applyUnitFilter(
		r.db.WithContext(ctx).Model(&models.UnitModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts units in a given status for a tenant
func (r *GormUnitRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status property.UnitStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UnitModel{}).
		Where("tenant_id = ? AND status = ?", tenantID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *property.Unit) error {
	model := models.UnitModelFromDomain(unit)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a unit for a tenant
func (r *GormUnitRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.UnitModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// ExistsByCode checks if a unit code exists for a tenant
func (r *GormUnitRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UnitModel{}).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormUnitRepository implements the interface
var _ property.UnitRepository = (*GormUnitRepository)(nil)
