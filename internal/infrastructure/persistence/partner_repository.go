package persistence

import (
	"context"
	"errors"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// FindByID finds a partner by ID
func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a partner by ID for a specific tenant
func (r *GormPartnerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Partner, error) {
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all partners for a tenant with filtering
func (r *GormPartnerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter partner.ListFilter) ([]partner.Partner, error) {
	var partnerModels []models.PartnerModel
	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", pattern, pattern)
	}
	query = query.Order("name ASC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}
	if err := query.Find(&partnerModels).Error; err != nil {
		return nil, err
	}
	partners := make([]partner.Partner, len(partnerModels))
	for i, model := range partnerModels {
		partners[i] = *model.ToDomain()
	}
	return partners, nil
}

// CountForTenant counts partners for a tenant with filtering
func (r *GormPartnerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter partner.ListFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PartnerModel{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", pattern, pattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a partner
func (r *GormPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	model := models.PartnerModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a partner for a tenant
func (r *GormPartnerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PartnerModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// Ensure GormPartnerRepository implements the interface
var _ partner.PartnerRepository = (*GormPartnerRepository)(nil)

// GormPartnerDebtRepository implements PartnerDebtRepository using GORM
type GormPartnerDebtRepository struct {
	db *gorm.DB
}

// NewGormPartnerDebtRepository creates a new GormPartnerDebtRepository
func NewGormPartnerDebtRepository(db *gorm.DB) *GormPartnerDebtRepository {
	return &GormPartnerDebtRepository{db: db}
}

// FindByIDForTenant finds a partner debt by ID for a specific tenant
func (r *GormPartnerDebtRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.PartnerDebt, error) {
	var model models.PartnerDebtModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPartner lists debts owed by one partner ordered by due date
func (r *GormPartnerDebtRepository) FindByPartner(ctx context.Context, tenantID, partnerID uuid.UUID) ([]partner.PartnerDebt, error) {
	var debtModels []models.PartnerDebtModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND partner_id = ?", tenantID, partnerID).
		Order("due_date ASC").
		Find(&debtModels).Error; err != nil {
		return nil, err
	}
	debts := make([]partner.PartnerDebt, len(debtModels))
	for i, model := range debtModels {
		debts[i] = *model.ToDomain()
	}
	return debts, nil
}

// CountByPartner counts non-deleted debts referencing a partner
func (r *GormPartnerDebtRepository) CountByPartner(ctx context.Context, tenantID, partnerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PartnerDebtModel{}).
		Where("tenant_id = ? AND partner_id = ?", tenantID, partnerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a partner debt
func (r *GormPartnerDebtRepository) Save(ctx context.Context, debt *partner.PartnerDebt) error {
	model := models.PartnerDebtModelFromDomain(debt)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a partner debt for a tenant
func (r *GormPartnerDebtRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PartnerDebtModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// Ensure GormPartnerDebtRepository implements the interface
var _ partner.PartnerDebtRepository = (*GormPartnerDebtRepository)(nil)
