package persistence

import (
	"context"
	"errors"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBrokerRepository implements BrokerRepository using GORM
type GormBrokerRepository struct {
	db *gorm.DB
}

// NewGormBrokerRepository creates a new GormBrokerRepository
func NewGormBrokerRepository(db *gorm.DB) *GormBrokerRepository {
	return &GormBrokerRepository{db: db}
}

// FindByID finds a broker by ID
func (r *GormBrokerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Broker, error) {
	var model models.BrokerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a broker by ID for a specific tenant
func (r *GormBrokerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Broker, error) {
	var model models.BrokerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all brokers for a tenant with filtering
func (r *GormBrokerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter partner.ListFilter) ([]partner.Broker, error) {
	var brokerModels []models.BrokerModel
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
	if err := query.Find(&brokerModels).Error; err != nil {
		return nil, err
	}
	brokers := make([]partner.Broker, len(brokerModels))
	for i, model := range brokerModels {
		brokers[i] = *model.ToDomain()
	}
	return brokers, nil
}

// CountForTenant counts brokers for a tenant with filtering
func (r *GormBrokerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter partner.ListFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.BrokerModel{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", pattern, pattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a broker
func (r *GormBrokerRepository) Save(ctx context.Context, broker *partner.Broker) error {
	model := models.BrokerModelFromDomain(broker)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a broker for a tenant
func (r *GormBrokerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BrokerModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// Ensure GormBrokerRepository implements the interface
var _ partner.BrokerRepository = (*GormBrokerRepository)(nil)

// GormBrokerDueRepository implements BrokerDueRepository using GORM
type GormBrokerDueRepository struct {
	db *gorm.DB
}

// NewGormBrokerDueRepository creates a new GormBrokerDueRepository
func NewGormBrokerDueRepository(db *gorm.DB) *GormBrokerDueRepository {
	return &GormBrokerDueRepository{db: db}
}

// FindByIDForTenant finds a broker due by ID for a specific tenant
func (r *GormBrokerDueRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.BrokerDue, error) {
	var model models.BrokerDueModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByBroker lists dues owed to one broker, newest first
func (r *GormBrokerDueRepository) FindByBroker(ctx context.Context, tenantID, brokerID uuid.UUID) ([]partner.BrokerDue, error) {
	var dueModels []models.BrokerDueModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND broker_id = ?", tenantID, brokerID).
		Order("created_at DESC").
		Find(&dueModels).Error; err != nil {
		return nil, err
	}
	dues := make([]partner.BrokerDue, len(dueModels))
	for i, model := range dueModels {
		dues[i] = *model.ToDomain()
	}
	return dues, nil
}

// FindByContract lists dues arising from one contract
func (r *GormBrokerDueRepository) FindByContract(ctx context.Context, tenantID, contractID uuid.UUID) ([]partner.BrokerDue, error) {
	var dueModels []models.BrokerDueModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND contract_id = ?", tenantID, contractID).
		Order("created_at DESC").
		Find(&dueModels).Error; err != nil {
		return nil, err
	}
	dues := make([]partner.BrokerDue, len(dueModels))
	for i, model := range dueModels {
		dues[i] = *model.ToDomain()
	}
	return dues, nil
}

// CountByBroker counts non-deleted dues referencing a broker
func (r *GormBrokerDueRepository) CountByBroker(ctx context.Context, tenantID, brokerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BrokerDueModel{}).
		Where("tenant_id = ? AND broker_id = ?", tenantID, brokerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a broker due
func (r *GormBrokerDueRepository) Save(ctx context.Context, due *partner.BrokerDue) error {
	model := models.BrokerDueModelFromDomain(due)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a broker due for a tenant
func (r *GormBrokerDueRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BrokerDueModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error
}

// Ensure GormBrokerDueRepository implements the interface
var _ partner.BrokerDueRepository = (*GormBrokerDueRepository)(nil)
