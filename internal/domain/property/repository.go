package property

import (
	"context"

	"github.com/google/uuid"
)

// UnitFilter defines filtering options for unit queries
type UnitFilter struct {
	Status   *UnitStatus
	UnitType string
	Search   string
	Page     int
	PageSize int
}

// UnitRepository persists Unit aggregates
type UnitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Unit, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Unit, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter UnitFilter) ([]Unit, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter UnitFilter) (int64, error)
	CountByStatus(ctx context.Context, tenantID uuid.UUID, status UnitStatus) (int64, error)
	Save(ctx context.Context, unit *Unit) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
}
