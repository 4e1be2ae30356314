package partner

import (
	"context"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BrokerService provides application-level broker and broker due operations
type BrokerService struct {
	brokerRepo   partner.BrokerRepository
	dueRepo      partner.BrokerDueRepository
	contractRepo sales.ContractRepository
}

// NewBrokerService creates a new BrokerService
func NewBrokerService(
	brokerRepo partner.BrokerRepository,
	dueRepo partner.BrokerDueRepository,
	contractRepo sales.ContractRepository,
) *BrokerService {
	return &BrokerService{
		brokerRepo:   brokerRepo,
		dueRepo:      dueRepo,
		contractRepo: contractRepo,
	}
}

// CreateBroker creates a new broker
func (s *BrokerService) CreateBroker(ctx context.Context, tenantID uuid.UUID, req BrokerRequest) (*BrokerResponse, error) {
	broker, err := partner.NewBroker(tenantID, req.Name, req.Phone, req.DefaultPercent)
	if err != nil {
		return nil, err
	}
	broker.Notes = req.Notes

	if err := s.brokerRepo.Save(ctx, broker); err != nil {
		return nil, err
	}
	return toBrokerResponse(broker), nil
}

// GetBroker gets a broker by ID
func (s *BrokerService) GetBroker(ctx context.Context, tenantID, id uuid.UUID) (*BrokerResponse, error) {
	broker, err := s.brokerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if broker == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "السمسار غير موجود")
	}
	return toBrokerResponse(broker), nil
}

// ListBrokers lists brokers with filtering
func (s *BrokerService) ListBrokers(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]BrokerResponse, int64, error) {
	domainFilter := filter.toDomain()
	brokers, err := s.brokerRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.brokerRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BrokerResponse, len(brokers))
	for i := range brokers {
		responses[i] = *toBrokerResponse(&brokers[i])
	}
	return responses, total, nil
}

// UpdateBroker updates a broker's fields
func (s *BrokerService) UpdateBroker(ctx context.Context, tenantID, id uuid.UUID, req BrokerRequest) (*BrokerResponse, error) {
	broker, err := s.brokerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if broker == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "السمسار غير موجود")
	}

	if err := broker.Update(req.Name, req.Phone, req.Notes, req.DefaultPercent); err != nil {
		return nil, err
	}
	if err := s.brokerRepo.Save(ctx, broker); err != nil {
		return nil, err
	}
	return toBrokerResponse(broker), nil
}

// DeleteBroker soft deletes a broker. Blocked while contracts or dues
// reference the broker.
func (s *BrokerService) DeleteBroker(ctx context.Context, tenantID, id uuid.UUID) error {
	broker, err := s.brokerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if broker == nil {
		return shared.NewDomainError("NOT_FOUND", "السمسار غير موجود")
	}

	contractCount, err := s.contractRepo.CountByBroker(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if contractCount > 0 {
		return shared.NewDomainError("HAS_REFERENCES", "لا يمكن حذف سمسار مرتبط بعقود")
	}
	dueCount, err := s.dueRepo.CountByBroker(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if dueCount > 0 {
		return shared.NewDomainError("HAS_REFERENCES", "لا يمكن حذف سمسار له عمولات")
	}

	return s.brokerRepo.Delete(ctx, tenantID, id)
}

// ListBrokerDues lists commissions owed to a broker
func (s *BrokerService) ListBrokerDues(ctx context.Context, tenantID, brokerID uuid.UUID) ([]BrokerDueResponse, error) {
	dues, err := s.dueRepo.FindByBroker(ctx, tenantID, brokerID)
	if err != nil {
		return nil, err
	}
	responses := make([]BrokerDueResponse, len(dues))
	for i := range dues {
		responses[i] = *toBrokerDueResponse(&dues[i])
	}
	return responses, nil
}

// PayBrokerDue marks a commission as paid
func (s *BrokerService) PayBrokerDue(ctx context.Context, tenantID, id uuid.UUID) (*BrokerDueResponse, error) {
	due, err := s.dueRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if due == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "العمولة غير موجودة")
	}

	if err := due.MarkPaid(); err != nil {
		return nil, err
	}
	if err := s.dueRepo.Save(ctx, due); err != nil {
		return nil, err
	}
	return toBrokerDueResponse(due), nil
}
