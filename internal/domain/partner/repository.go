package partner

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter defines common filtering options for partner-side queries
type ListFilter struct {
	Search   string
	Page     int
	PageSize int
}

// CustomerRepository persists Customer aggregates
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]Customer, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter ListFilter) (int64, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// BrokerRepository persists Broker aggregates
type BrokerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Broker, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Broker, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]Broker, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter ListFilter) (int64, error)
	Save(ctx context.Context, broker *Broker) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// BrokerDueRepository persists BrokerDue aggregates
type BrokerDueRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*BrokerDue, error)
	FindByBroker(ctx context.Context, tenantID, brokerID uuid.UUID) ([]BrokerDue, error)
	FindByContract(ctx context.Context, tenantID, contractID uuid.UUID) ([]BrokerDue, error)
	CountByBroker(ctx context.Context, tenantID, brokerID uuid.UUID) (int64, error)
	Save(ctx context.Context, due *BrokerDue) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// PartnerRepository persists Partner aggregates
type PartnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Partner, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]Partner, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter ListFilter) (int64, error)
	Save(ctx context.Context, partner *Partner) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// PartnerDebtRepository persists PartnerDebt aggregates
type PartnerDebtRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*PartnerDebt, error)
	FindByPartner(ctx context.Context, tenantID, partnerID uuid.UUID) ([]PartnerDebt, error)
	CountByPartner(ctx context.Context, tenantID, partnerID uuid.UUID) (int64, error)
	Save(ctx context.Context, debt *PartnerDebt) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
