package property

import (
	"context"

	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UnitService provides application-level property unit operations
type UnitService struct {
	unitRepo        property.UnitRepository
	contractRepo    sales.ContractRepository
	installmentRepo sales.InstallmentRepository
}

// NewUnitService creates a new UnitService
func NewUnitService(
	unitRepo property.UnitRepository,
	contractRepo sales.ContractRepository,
	installmentRepo sales.InstallmentRepository,
) *UnitService {
	return &UnitService{
		unitRepo:        unitRepo,
		contractRepo:    contractRepo,
		installmentRepo: installmentRepo,
	}
}

// CreateUnit creates a new unit in the AVAILABLE state
func (s *UnitService) CreateUnit(ctx context.Context, tenantID uuid.UUID, req CreateUnitRequest) (*UnitResponse, error) {
	exists, err := s.unitRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "يوجد وحدة بنفس الكود")
	}

	unit, err := property.NewUnit(tenantID, req.Code, req.UnitType, req.TotalPrice)
	if err != nil {
		return nil, err
	}
	unit.Name = req.Name
	unit.Address = req.Address
	unit.Area = req.Area
	unit.Notes = req.Notes

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetUnit gets a unit by ID
func (s *UnitService) GetUnit(ctx context.Context, tenantID, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "الوحدة غير موجودة")
	}
	return toUnitResponse(unit), nil
}

// ListUnits lists units with filtering
func (s *UnitService) ListUnits(ctx context.Context, tenantID uuid.UUID, filter UnitListFilter) ([]UnitResponse, int64, error) {
	domainFilter := filter.toDomain()
	units, err := s.unitRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.unitRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = *toUnitResponse(&units[i])
	}
	return responses, total, nil
}

// UpdateUnit updates a unit's descriptive fields. Status never changes here;
// it only moves through contract lifecycle and SellUnit.
func (s *UnitService) UpdateUnit(ctx context.Context, tenantID, id uuid.UUID, req UpdateUnitRequest) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "الوحدة غير موجودة")
	}

	if err := unit.UpdateDetails(req.Name, req.UnitType, req.Address, req.Notes, req.Area, req.TotalPrice); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// DeleteUnit soft deletes a unit. Blocked while a contract or installments
// reference the unit.
func (s *UnitService) DeleteUnit(ctx context.Context, tenantID, id uuid.UUID) error {
	unit, err := s.unitRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if unit == nil {
		return shared.NewDomainError("NOT_FOUND", "الوحدة غير موجودة")
	}

	contract, err := s.contractRepo.FindActiveByUnit(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if contract != nil {
		return shared.NewDomainError("HAS_REFERENCES", "لا يمكن حذف وحدة مرتبطة بعقد")
	}
	installmentCount, err := s.installmentRepo.CountByUnit(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if installmentCount > 0 {
		return shared.NewDomainError("HAS_REFERENCES", "لا يمكن حذف وحدة لها أقساط")
	}

	return s.unitRepo.Delete(ctx, tenantID, id)
}

// SellUnit transitions a RESERVED unit to SOLD by explicit action
func (s *UnitService) SellUnit(ctx context.Context, tenantID, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "الوحدة غير موجودة")
	}

	if err := unit.Sell(); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}
