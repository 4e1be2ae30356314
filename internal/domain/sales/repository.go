package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContractFilter defines filtering options for contract queries
type ContractFilter struct {
	UnitID     *uuid.UUID
	CustomerID *uuid.UUID
	BrokerID   *uuid.UUID
	FromDate   *time.Time
	ToDate     *time.Time
	Page       int
	PageSize   int
}

// InstallmentFilter defines filtering options for installment queries
type InstallmentFilter struct {
	UnitID     *uuid.UUID
	ContractID *uuid.UUID
	Status     *InstallmentStatus
	DueBefore  *time.Time
	DueAfter   *time.Time
	Page       int
	PageSize   int
}

// ContractRepository persists Contract aggregates
type ContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Contract, error)
	FindActiveByUnit(ctx context.Context, tenantID, unitID uuid.UUID) (*Contract, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ContractFilter) ([]Contract, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter ContractFilter) (int64, error)
	CountByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error)
	CountByBroker(ctx context.Context, tenantID, brokerID uuid.UUID) (int64, error)
	Save(ctx context.Context, contract *Contract) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// InstallmentRepository persists Installment aggregates
type InstallmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Installment, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Installment, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter InstallmentFilter) ([]Installment, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter InstallmentFilter) (int64, error)
	CountByUnit(ctx context.Context, tenantID, unitID uuid.UUID) (int64, error)
	CountPendingByUnit(ctx context.Context, tenantID, unitID uuid.UUID) (int64, error)
	CountOverdue(ctx context.Context, tenantID uuid.UUID, now time.Time) (int64, error)
	Save(ctx context.Context, installment *Installment) error
	SaveAll(ctx context.Context, installments []*Installment) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
