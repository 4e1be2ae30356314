package treasury

import (
	"context"
	"time"

	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
)

// idempotencyTTL bounds how long a create request key is remembered.
const idempotencyTTL = 24 * time.Hour

// VoucherService provides application-level voucher operations. Every
// mutation runs inside a transaction scope so the voucher row and the safe
// balance delta commit or roll back together.
type VoucherService struct {
	voucherRepo treasury.VoucherRepository
	unitRepo    property.UnitRepository
	txScope     TransactionScope
	idemStore   shared.IdempotencyStore
}

// NewVoucherService creates a new VoucherService
func NewVoucherService(
	voucherRepo treasury.VoucherRepository,
	unitRepo property.UnitRepository,
	txScope TransactionScope,
	idemStore shared.IdempotencyStore,
) *VoucherService {
	return &VoucherService{
		voucherRepo: voucherRepo,
		unitRepo:    unitRepo,
		txScope:     txScope,
		idemStore:   idemStore,
	}
}

// CreateVoucher creates a voucher and applies its signed amount to the safe
// balance in one transaction. A repeated Idempotency-Key returns the voucher
// created by the first request instead of double-posting.
func (s *VoucherService) CreateVoucher(ctx context.Context, tenantID uuid.UUID, req CreateVoucherRequest) (*VoucherResponse, error) {
	voucher, err := treasury.NewVoucher(
		tenantID,
		treasury.VoucherType(req.Type),
		req.Date,
		req.Amount,
		req.SafeID,
		req.Description,
	)
	if err != nil {
		return nil, err
	}
	if req.Payer != "" || req.Beneficiary != "" {
		voucher.SetParties(req.Payer, req.Beneficiary)
	}

	if req.UnitID != nil {
		unit, err := s.unitRepo.FindByIDForTenant(ctx, tenantID, *req.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, shared.NewDomainError("NOT_FOUND", "الوحدة غير موجودة")
		}
		voucher.LinkUnit(*req.UnitID)
	}

	var reservedKey string
	if req.IdempotencyKey != "" {
		key := idempotencyKey(tenantID, "voucher", req.IdempotencyKey)
		ok, existing, err := s.idemStore.SetNX(ctx, key, voucher.ID.String(), idempotencyTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			existingID, err := uuid.Parse(existing)
			if err != nil {
				return nil, shared.ErrConcurrencyConflict
			}
			return s.GetVoucher(ctx, tenantID, existingID)
		}
		reservedKey = key
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		safe, err := repos.SafeRepo().FindByIDForTenant(ctx, tenantID, req.SafeID)
		if err != nil {
			return err
		}
		if safe == nil {
			return shared.NewDomainError("NOT_FOUND", "الخزنة غير موجودة")
		}
		if err := repos.VoucherRepo().Save(ctx, voucher); err != nil {
			return err
		}
		return repos.SafeRepo().AdjustBalance(ctx, tenantID, voucher.SafeID, voucher.SignedAmount())
	})
	if err != nil {
		// Nothing was persisted, so the reservation must not outlive the
		// failed transaction or a retry with the same key would resolve
		// to a voucher that does not exist.
		if reservedKey != "" {
			_ = s.idemStore.Delete(ctx, reservedKey)
		}
		return nil, err
	}
	return toVoucherResponse(voucher), nil
}

// GetVoucher gets a voucher by ID
func (s *VoucherService) GetVoucher(ctx context.Context, tenantID, id uuid.UUID) (*VoucherResponse, error) {
	voucher, err := s.voucherRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "السند غير موجود")
	}
	return toVoucherResponse(voucher), nil
}

// ListVouchers lists vouchers with filtering
func (s *VoucherService) ListVouchers(ctx context.Context, tenantID uuid.UUID, filter VoucherListFilter) ([]VoucherResponse, int64, error) {
	domainFilter := filter.toDomain()
	vouchers, err := s.voucherRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.voucherRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = *toVoucherResponse(&vouchers[i])
	}
	return responses, total, nil
}

// UpdateVoucher patches a voucher. The pre-patch signed amount is reversed on
// the safe the voucher pointed at before the update, and the new signed amount
// is applied to the safe it points at after, so moving a voucher between
// safes corrects both balances.
func (s *VoucherService) UpdateVoucher(ctx context.Context, tenantID, id uuid.UUID, req UpdateVoucherRequest) (*VoucherResponse, error) {
	if req.UnitID != nil {
		unit, err := s.unitRepo.FindByIDForTenant(ctx, tenantID, *req.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, shared.NewDomainError("NOT_FOUND", "الوحدة غير موجودة")
		}
	}

	var voucher *treasury.Voucher
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		voucher, err = repos.VoucherRepo().FindByIDForTenant(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if voucher == nil {
			return shared.NewDomainError("NOT_FOUND", "السند غير موجود")
		}

		patch := treasury.VoucherPatch{
			Date:        req.Date,
			Amount:      req.Amount,
			SafeID:      req.SafeID,
			UnitID:      req.UnitID,
			Description: req.Description,
			Payer:       req.Payer,
			Beneficiary: req.Beneficiary,
		}
		if req.Type != nil {
			voucherType := treasury.VoucherType(*req.Type)
			patch.Type = &voucherType
		}

		oldSigned, oldSafeID, err := voucher.Apply(patch)
		if err != nil {
			return err
		}

		if voucher.SafeID != oldSafeID {
			safe, err := repos.SafeRepo().FindByIDForTenant(ctx, tenantID, voucher.SafeID)
			if err != nil {
				return err
			}
			if safe == nil {
				return shared.NewDomainError("NOT_FOUND", "الخزنة غير موجودة")
			}
		}

		if err := repos.VoucherRepo().Save(ctx, voucher); err != nil {
			return err
		}
		if err := repos.SafeRepo().AdjustBalance(ctx, tenantID, oldSafeID, oldSigned.Neg()); err != nil {
			return err
		}
		return repos.SafeRepo().AdjustBalance(ctx, tenantID, voucher.SafeID, voucher.SignedAmount())
	})
	if err != nil {
		return nil, err
	}
	return toVoucherResponse(voucher), nil
}

// DeleteVoucher soft deletes a voucher and reverses its signed amount on the
// safe in one transaction.
func (s *VoucherService) DeleteVoucher(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		voucher, err := repos.VoucherRepo().FindByIDForTenant(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if voucher == nil {
			return shared.NewDomainError("NOT_FOUND", "السند غير موجود")
		}
		if err := repos.VoucherRepo().Delete(ctx, tenantID, id); err != nil {
			return err
		}
		return repos.SafeRepo().AdjustBalance(ctx, tenantID, voucher.SafeID, voucher.SignedAmount().Neg())
	})
}

func idempotencyKey(tenantID uuid.UUID, operation, key string) string {
	return "idem:" + tenantID.String() + ":" + operation + ":" + key
}
