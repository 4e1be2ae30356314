package partner

import (
	"context"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerService provides application-level partner and partner debt operations
type PartnerService struct {
	partnerRepo partner.PartnerRepository
	debtRepo    partner.PartnerDebtRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.PartnerRepository, debtRepo partner.PartnerDebtRepository) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
		debtRepo:    debtRepo,
	}
}

// CreatePartner creates a new partner
func (s *PartnerService) CreatePartner(ctx context.Context, tenantID uuid.UUID, req PartnerRequest) (*PartnerResponse, error) {
	p, err := partner.NewPartner(tenantID, req.Name, req.Phone, req.SharePercent)
	if err != nil {
		return nil, err
	}
	p.Notes = req.Notes

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return toPartnerResponse(p), nil
}

// GetPartner gets a partner by ID
func (s *PartnerService) GetPartner(ctx context.Context, tenantID, id uuid.UUID) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "الشريك غير موجود")
	}
	return toPartnerResponse(p), nil
}

// ListPartners lists partners with filtering
func (s *PartnerService) ListPartners(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]PartnerResponse, int64, error) {
	domainFilter := filter.toDomain()
	partners, err := s.partnerRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.partnerRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = *toPartnerResponse(&partners[i])
	}
	return responses, total, nil
}

// UpdatePartner updates a partner's fields
func (s *PartnerService) UpdatePartner(ctx context.Context, tenantID, id uuid.UUID, req PartnerRequest) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "الشريك غير موجود")
	}

	if err := p.Update(req.Name, req.Phone, req.Notes, req.SharePercent); err != nil {
		return nil, err
	}
	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return toPartnerResponse(p), nil
}

// DeletePartner soft deletes a partner. Blocked while debts reference the
// partner.
func (s *PartnerService) DeletePartner(ctx context.Context, tenantID, id uuid.UUID) error {
	p, err := s.partnerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return shared.NewDomainError("NOT_FOUND", "الشريك غير موجود")
	}

	debtCount, err := s.debtRepo.CountByPartner(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if debtCount > 0 {
		return shared.NewDomainError("HAS_REFERENCES", "لا يمكن حذف شريك له مديونيات")
	}

	return s.partnerRepo.Delete(ctx, tenantID, id)
}

// CreatePartnerDebt records a debt owed by a partner
func (s *PartnerService) CreatePartnerDebt(ctx context.Context, tenantID uuid.UUID, req CreatePartnerDebtRequest) (*PartnerDebtResponse, error) {
	p, err := s.partnerRepo.FindByIDForTenant(ctx, tenantID, req.PartnerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "الشريك غير موجود")
	}

	debt, err := partner.NewPartnerDebt(tenantID, req.PartnerID, req.Amount, req.DueDate)
	if err != nil {
		return nil, err
	}
	debt.Notes = req.Notes

	if err := s.debtRepo.Save(ctx, debt); err != nil {
		return nil, err
	}
	return toPartnerDebtResponse(debt), nil
}

// ListPartnerDebts lists debts owed by a partner
func (s *PartnerService) ListPartnerDebts(ctx context.Context, tenantID, partnerID uuid.UUID) ([]PartnerDebtResponse, error) {
	debts, err := s.debtRepo.FindByPartner(ctx, tenantID, partnerID)
	if err != nil {
		return nil, err
	}
	responses := make([]PartnerDebtResponse, len(debts))
	for i := range debts {
		responses[i] = *toPartnerDebtResponse(&debts[i])
	}
	return responses, nil
}

// SettlePartnerDebt marks a debt as settled
func (s *PartnerService) SettlePartnerDebt(ctx context.Context, tenantID, id uuid.UUID) (*PartnerDebtResponse, error) {
	debt, err := s.debtRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "المديونية غير موجودة")
	}

	if err := debt.Settle(); err != nil {
		return nil, err
	}
	if err := s.debtRepo.Save(ctx, debt); err != nil {
		return nil, err
	}
	return toPartnerDebtResponse(debt), nil
}

// DeletePartnerDebt soft deletes a partner debt
func (s *PartnerService) DeletePartnerDebt(ctx context.Context, tenantID, id uuid.UUID) error {
	debt, err := s.debtRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if debt == nil {
		return shared.NewDomainError("NOT_FOUND", "المديونية غير موجودة")
	}
	return s.debtRepo.Delete(ctx, tenantID, id)
}
