package persistence

import (
	"context"
	"errors"

	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract by ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a contract by ID for a specific tenant
func (r *GormContractRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*sales.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByUnit finds the non-deleted contract covering a unit, if any.
// A unit has at most one live contract at a time.
func (r *GormContractRepository) FindActiveByUnit(ctx context.Context, tenantID, unitID uuid.UUID) (*sales.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).First(&model, "unit_id = ? AND tenant_id = ?", unitID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func applyContractFilter(query *gorm.DB, filter sales.ContractFilter) *gorm.DB {
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.BrokerID != nil {
		query = query.Where("broker_id = ?", *filter.BrokerID)
	}
	if filter.FromDate != nil {
		query = query.Where("contract_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("contract_date <= ?", *filter.ToDate)
	}
	return query
}

// FindAllForTenant finds all contracts for a tenant with filtering
func (r *GormContractRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter sales.ContractFilter) ([]sales.Contract, error) {
	var contractModels []models.ContractModel
	query := applyContractFilter(r.db.WithContext(ctx).Where("tenant_id = ?", tenantID), filter).
		Order("contract_date DESC, created_at DESC")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Find(&contractModels).Error; err != nil {
		return nil, err
	}
	contracts := make([]sales.Contract, len(contractModels))
	for i, model := range contractModels {
		contracts[i] = *model.ToDomain()
	}
	return contracts, nil
}

// CountForTenant counts contracts for a tenant with filtering
func (r *GormContractRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter sales.ContractFilter) (int64, error) {
	var count int64
	query := applyContractFilter(
		r.db.WithContext(ctx).Model(&models.ContractModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomer counts non-deleted contracts referencing a customer
func (r *GormContractRepository) CountByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByBroker counts non-deleted contracts referencing a broker
func (r *GormContractRepository) CountByBroker(ctx context.Context, tenantID, brokerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("tenant_id = ? AND broker_id = ?", tenantID, brokerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a contract
func (r *GormContractRepository) Save(ctx context.Context, contract *sales.Contract) error {
	model := models.ContractModelFromDomain(contract)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a contract for a tenant
func (r *GormContractRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.ContractModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// Ensure GormContractRepository implements the interface
var _ sales.ContractRepository = (*GormContractRepository)(nil)
