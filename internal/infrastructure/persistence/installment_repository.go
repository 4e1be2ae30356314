package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInstallmentRepository implements InstallmentRepository using GORM
type GormInstallmentRepository struct {
	db *gorm.DB
}

// NewGormInstallmentRepository creates a new GormInstallmentRepository
func NewGormInstallmentRepository(db *gorm.DB) *GormInstallmentRepository {
	return &GormInstallmentRepository{db: db}
}

// FindByID finds an installment by ID
func (r *GormInstallmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Installment, error) {
	var model models.InstallmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds an installment by ID for a specific tenant
func (r *GormInstallmentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*sales.Installment, error) {
	var model models.InstallmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func applyInstallmentFilter(query *gorm.DB, filter sales.InstallmentFilter) *gorm.DB {
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.ContractID != nil {
		query = query.Where("contract_id = ?", *filter.ContractID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DueBefore != nil {
		query = query.Where("due_date <= ?", *filter.DueBefore)
	}
	if filter.DueAfter != nil {
		query = query.Where("due_date >= ?", *filter.DueAfter)
	}
	return query
}

// FindAllForTenant finds all installments for a tenant with filtering
func (r *GormInstallmentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter sales.InstallmentFilter) ([]sales.Installment, error) {
	var installmentModels []models.InstallmentModel
	query := applyInstallmentFilter(r.db.WithContext(ctx).Where("tenant_id = ?", tenantID), filter).
		Order("due_date ASC")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Find(&installmentModels).Error; err != nil {
		return nil, err
	}
	installments := make([]sales.Installment, len(installmentModels))
	for i, model := range installmentModels {
		installments[i] = *model.ToDomain()
	}
	return installments, nil
}

// CountForTenant counts installments for a tenant with filtering
func (r *GormInstallmentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter sales.InstallmentFilter) (int64, error) {
	var count int64
	query := applyInstallmentFilter(
		r.db.WithContext(ctx).Model(&models.InstallmentModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByUnit counts non-deleted installments for a unit
func (r *GormInstallmentRepository) CountByUnit(ctx context.Context, tenantID, unitID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InstallmentModel{}).
		Where("tenant_id = ? AND unit_id = ?", tenantID, unitID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPendingByUnit counts installments still awaiting payment for a unit
func (r *GormInstallmentRepository) CountPendingByUnit(ctx context.Context, tenantID, unitID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InstallmentModel{}).
		Where("tenant_id = ? AND unit_id = ? AND status = ?", tenantID, unitID, sales.InstallmentStatusPending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOverdue counts pending installments whose due date has passed
func (r *GormInstallmentRepository) CountOverdue(ctx context.Context, tenantID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InstallmentModel{}).
		Where("tenant_id = ? AND status = ? AND due_date < ?", tenantID, sales.InstallmentStatusPending, now).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an installment
func (r *GormInstallmentRepository) Save(ctx context.Context, installment *sales.Installment) error {
	model := models.InstallmentModelFromDomain(installment)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveAll persists a batch of installments in one statement
func (r *GormInstallmentRepository) SaveAll(ctx context.Context, installments []*sales.Installment) error {
	if len(installments) == 0 {
		return nil
	}
	installmentModels := make([]*models.InstallmentModel, len(installments))
	for i, installment := range installments {
		installmentModels[i] = models.InstallmentModelFromDomain(installment)
	}
	return r.db.WithContext(ctx).Create(&installmentModels).Error
}

// Delete soft deletes an installment for a tenant
func (r *GormInstallmentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.InstallmentModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// Ensure GormInstallmentRepository implements the interface
var _ sales.InstallmentRepository = (*GormInstallmentRepository)(nil)
