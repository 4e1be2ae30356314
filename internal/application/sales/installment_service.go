package sales

import (
	"context"
	"time"

	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
)

// InstallmentService provides application-level installment operations.
// Status changes may cascade: paying into a safe posts a receipt voucher with
// its balance delta, and paying off a unit's last pending installment sells
// the unit. All of that happens in one transaction.
type InstallmentService struct {
	installmentRepo sales.InstallmentRepository
	contractRepo    sales.ContractRepository
	txScope         TransactionScope
}

// NewInstallmentService creates a new InstallmentService
func NewInstallmentService(
	installmentRepo sales.InstallmentRepository,
	contractRepo sales.ContractRepository,
	txScope TransactionScope,
) *InstallmentService {
	return &InstallmentService{
		installmentRepo: installmentRepo,
		contractRepo:    contractRepo,
		txScope:         txScope,
	}
}

// CreateInstallment adds a manual installment to an existing contract
func (s *InstallmentService) CreateInstallment(ctx context.Context, tenantID uuid.UUID, req CreateInstallmentRequest) (*InstallmentResponse, error) {
	contract, err := s.contractRepo.FindByIDForTenant(ctx, tenantID, req.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "العقد غير موجود")
	}

	installment, err := sales.NewInstallment(tenantID, contract.UnitID, contract.ID, req.Amount, req.DueDate)
	if err != nil {
		return nil, err
	}
	installment.Notes = req.Notes

	if err := s.installmentRepo.Save(ctx, installment); err != nil {
		return nil, err
	}
	return toInstallmentResponse(installment, time.Now().UTC()), nil
}

// GetInstallment gets an installment by ID
func (s *InstallmentService) GetInstallment(ctx context.Context, tenantID, id uuid.UUID) (*InstallmentResponse, error) {
	installment, err := s.installmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if installment == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "القسط غير موجود")
	}
	return toInstallmentResponse(installment, time.Now().UTC()), nil
}

// ListInstallments lists installments with filtering
func (s *InstallmentService) ListInstallments(ctx context.Context, tenantID uuid.UUID, filter InstallmentListFilter) ([]InstallmentResponse, int64, error) {
	domainFilter := filter.toDomain()
	installments, err := s.installmentRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.installmentRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now().UTC()
	responses := make([]InstallmentResponse, len(installments))
	for i := range installments {
		responses[i] = *toInstallmentResponse(&installments[i], now)
	}
	return responses, total, nil
}

// UpdateInstallment edits the amount, due date or notes of a pending installment
func (s *InstallmentService) UpdateInstallment(ctx context.Context, tenantID, id uuid.UUID, req UpdateInstallmentRequest) (*InstallmentResponse, error) {
	installment, err := s.installmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if installment == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "القسط غير موجود")
	}
	if installment.Status == sales.InstallmentStatusPaid {
		return nil, shared.NewDomainError("INVALID_STATE", "لا يمكن تعديل قسط مدفوع")
	}

	if req.Amount != nil {
		installment.Amount = *req.Amount
	}
	if req.DueDate != nil {
		if req.DueDate.IsZero() {
			return nil, shared.NewDomainError("INVALID_DATE", "تاريخ الاستحقاق مطلوب")
		}
		installment.DueDate = *req.DueDate
	}
	if req.Notes != nil {
		installment.Notes = *req.Notes
	}
	installment.IncrementVersion()

	if err := s.installmentRepo.Save(ctx, installment); err != nil {
		return nil, err
	}
	return toInstallmentResponse(installment, time.Now().UTC()), nil
}

// PatchStatus marks an installment PAID or PENDING. Marking PAID with a safe
// posts a linked receipt voucher and its balance delta; when the unit's last
// pending installment is paid the unit moves to SOLD. One transaction covers
// all of it.
func (s *InstallmentService) PatchStatus(ctx context.Context, tenantID, id uuid.UUID, req PatchInstallmentStatusRequest) (*InstallmentResponse, error) {
	var installment *sales.Installment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		installment, err = repos.InstallmentRepo().FindByIDForTenant(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if installment == nil {
			return shared.NewDomainError("NOT_FOUND", "القسط غير موجود")
		}

		switch sales.InstallmentStatus(req.Status) {
		case sales.InstallmentStatusPaid:
			if err := installment.MarkPaid(req.Notes); err != nil {
				return err
			}
			if err := repos.InstallmentRepo().Save(ctx, installment); err != nil {
				return err
			}
			if req.SafeID != nil {
				if err := s.postReceiptVoucher(ctx, repos, installment, *req.SafeID); err != nil {
					return err
				}
			}
			return s.sellUnitIfPaidOff(ctx, repos, installment)

		case sales.InstallmentStatusPending:
			if err := installment.MarkPending(req.Notes); err != nil {
				return err
			}
			return repos.InstallmentRepo().Save(ctx, installment)

		default:
			return shared.NewDomainError("INVALID_INPUT", "حالة القسط غير صالحة")
		}
	})
	if err != nil {
		return nil, err
	}
	return toInstallmentResponse(installment, time.Now().UTC()), nil
}

func (s *InstallmentService) postReceiptVoucher(ctx context.Context, repos TransactionalRepositories, installment *sales.Installment, safeID uuid.UUID) error {
	safe, err := repos.SafeRepo().FindByIDForTenant(ctx, installment.TenantID, safeID)
	if err != nil {
		return err
	}
	if safe == nil {
		return shared.NewDomainError("NOT_FOUND", "الخزنة غير موجودة")
	}

	voucher, err := treasury.NewVoucher(
		installment.TenantID,
		treasury.VoucherTypeReceipt,
		time.Now().UTC(),
		installment.Amount,
		safeID,
		"سداد قسط",
	)
	if err != nil {
		return err
	}
	voucher.LinkUnit(installment.UnitID)

	if err := repos.VoucherRepo().Save(ctx, voucher); err != nil {
		return err
	}
	return repos.SafeRepo().AdjustBalance(ctx, installment.TenantID, safeID, voucher.SignedAmount())
}

func (s *InstallmentService) sellUnitIfPaidOff(ctx context.Context, repos TransactionalRepositories, installment *sales.Installment) error {
	pending, err := repos.InstallmentRepo().CountPendingByUnit(ctx, installment.TenantID, installment.UnitID)
	if err != nil {
		return err
	}
	if pending > 0 {
		return nil
	}

	unit, err := repos.UnitRepo().FindByIDForTenant(ctx, installment.TenantID, installment.UnitID)
	if err != nil {
		return err
	}
	if unit == nil || !unit.IsReserved() {
		return nil
	}
	if err := unit.Sell(); err != nil {
		return err
	}
	return repos.UnitRepo().Save(ctx, unit)
}

// DeleteInstallment soft deletes an installment
func (s *InstallmentService) DeleteInstallment(ctx context.Context, tenantID, id uuid.UUID) error {
	installment, err := s.installmentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if installment == nil {
		return shared.NewDomainError("NOT_FOUND", "القسط غير موجود")
	}
	return s.installmentRepo.Delete(ctx, tenantID, id)
}
