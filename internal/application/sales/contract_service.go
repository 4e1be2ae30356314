package sales

import (
	"context"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractService provides application-level contract operations. Contract
// creation and deletion drive the unit status state machine, so both run in a
// transaction scope covering contracts, installments, units and broker dues.
type ContractService struct {
	contractRepo    sales.ContractRepository
	installmentRepo sales.InstallmentRepository
	customerRepo    partner.CustomerRepository
	brokerRepo      partner.BrokerRepository
	txScope         TransactionScope
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo sales.ContractRepository,
	installmentRepo sales.InstallmentRepository,
	customerRepo partner.CustomerRepository,
	brokerRepo partner.BrokerRepository,
	txScope TransactionScope,
) *ContractService {
	return &ContractService{
		contractRepo:    contractRepo,
		installmentRepo: installmentRepo,
		customerRepo:    customerRepo,
		brokerRepo:      brokerRepo,
		txScope:         txScope,
	}
}

// CreateContract creates a contract on an AVAILABLE unit. In one transaction
// it inserts the contract, generates the installment schedule, records the
// broker due when a broker is attached, and flips the unit to RESERVED.
func (s *ContractService) CreateContract(ctx context.Context, tenantID uuid.UUID, req CreateContractRequest) (*ContractResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "العميل غير موجود")
	}

	brokerPercent := req.BrokerPercent
	if req.BrokerID != nil {
		broker, err := s.brokerRepo.FindByIDForTenant(ctx, tenantID, *req.BrokerID)
		if err != nil {
			return nil, err
		}
		if broker == nil {
			return nil, shared.NewDomainError("NOT_FOUND", "السمسار غير موجود")
		}
		if brokerPercent.IsZero() && req.BrokerAmount == nil {
			brokerPercent = broker.DefaultPercent
		}
	}

	contract, err := sales.NewContract(
		tenantID,
		req.UnitID,
		req.CustomerID,
		req.ContractDate,
		req.TotalPrice,
		req.DiscountAmount,
		brokerPercent,
		req.BrokerAmount,
		req.InstallmentCount,
	)
	if err != nil {
		return nil, err
	}
	if req.BrokerID != nil {
		contract.SetBroker(*req.BrokerID)
	}
	if req.Notes != "" {
		contract.SetNotes(req.Notes)
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		unit, err := repos.UnitRepo().FindByIDForTenant(ctx, tenantID, req.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return shared.NewDomainError("NOT_FOUND", "الوحدة غير موجودة")
		}
		if err := unit.Reserve(); err != nil {
			return err
		}

		if err := repos.ContractRepo().Save(ctx, contract); err != nil {
			return err
		}
		if schedule := contract.BuildSchedule(); len(schedule) > 0 {
			if err := repos.InstallmentRepo().SaveAll(ctx, schedule); err != nil {
				return err
			}
		}
		if contract.BrokerID != nil && contract.BrokerAmount.GreaterThan(decimal.Zero) {
			due, err := partner.NewBrokerDue(tenantID, *contract.BrokerID, contract.ID, contract.BrokerAmount)
			if err != nil {
				return err
			}
			if err := repos.BrokerDueRepo().Save(ctx, due); err != nil {
				return err
			}
		}

		return repos.UnitRepo().Save(ctx, unit)
	})
	if err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// GetContract gets a contract by ID
func (s *ContractService) GetContract(ctx context.Context, tenantID, id uuid.UUID) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "العقد غير موجود")
	}
	return toContractResponse(contract), nil
}

// ListContracts lists contracts with filtering
func (s *ContractService) ListContracts(ctx context.Context, tenantID uuid.UUID, filter ContractListFilter) ([]ContractResponse, int64, error) {
	domainFilter := filter.toDomain()
	contracts, err := s.contractRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contractRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = *toContractResponse(&contracts[i])
	}
	return responses, total, nil
}

// DeleteContract soft deletes a contract and releases its unit back to
// AVAILABLE in one transaction. Blocked while any non-deleted installment
// belongs to the contract; the schedule must be removed first.
func (s *ContractService) DeleteContract(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		contract, err := repos.ContractRepo().FindByIDForTenant(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if contract == nil {
			return shared.NewDomainError("NOT_FOUND", "العقد غير موجود")
		}

		contractID := contract.ID
		installmentCount, err := repos.InstallmentRepo().CountForTenant(ctx, tenantID, sales.InstallmentFilter{ContractID: &contractID})
		if err != nil {
			return err
		}
		if installmentCount > 0 {
			return shared.NewDomainError("CONFLICT", "لا يمكن حذف عقد له أقساط")
		}

		// Pending commissions die with the contract; paid ones stay on record.
		dues, err := repos.BrokerDueRepo().FindByContract(ctx, tenantID, contractID)
		if err != nil {
			return err
		}
		for i := range dues {
			if dues[i].Status == partner.BrokerDueStatusPending {
				if err := repos.BrokerDueRepo().Delete(ctx, tenantID, dues[i].ID); err != nil {
					return err
				}
			}
		}

		unit, err := repos.UnitRepo().FindByIDForTenant(ctx, tenantID, contract.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return shared.NewDomainError("NOT_FOUND", "الوحدة غير موجودة")
		}
		if err := unit.Release(); err != nil {
			return err
		}
		if err := repos.UnitRepo().Save(ctx, unit); err != nil {
			return err
		}

		return repos.ContractRepo().Delete(ctx, tenantID, id)
	})
}
