package treasury

import (
	"context"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
)

// TransferService provides application-level safe-to-safe transfer
// operations. Unlike vouchers, transfers refuse to overdraw the source safe.
type TransferService struct {
	transferRepo treasury.TransferRepository
	txScope      TransactionScope
	idemStore    shared.IdempotencyStore
}

// NewTransferService creates a new TransferService
func NewTransferService(
	transferRepo treasury.TransferRepository,
	txScope TransactionScope,
	idemStore shared.IdempotencyStore,
) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		txScope:      txScope,
		idemStore:    idemStore,
	}
}

// CreateTransfer debits the source safe and credits the destination safe
// together with the transfer row in one transaction.
func (s *TransferService) CreateTransfer(ctx context.Context, tenantID uuid.UUID, req CreateTransferRequest) (*TransferResponse, error) {
	transfer, err := treasury.NewTransfer(tenantID, req.FromSafeID, req.ToSafeID, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}

	var reservedKey string
	if req.IdempotencyKey != "" {
		key := idempotencyKey(tenantID, "transfer", req.IdempotencyKey)
		ok, existing, err := s.idemStore.SetNX(ctx, key, transfer.ID.String(), idempotencyTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			existingID, err := uuid.Parse(existing)
			if err != nil {
				return nil, shared.ErrConcurrencyConflict
			}
			return s.GetTransfer(ctx, tenantID, existingID)
		}
		reservedKey = key
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		fromSafe, err := repos.SafeRepo().FindByIDForTenant(ctx, tenantID, req.FromSafeID)
		if err != nil {
			return err
		}
		if fromSafe == nil {
			return shared.NewDomainError("NOT_FOUND", "خزنة التحويل غير موجودة")
		}
		toSafe, err := repos.SafeRepo().FindByIDForTenant(ctx, tenantID, req.ToSafeID)
		if err != nil {
			return err
		}
		if toSafe == nil {
			return shared.NewDomainError("NOT_FOUND", "الخزنة المستلمة غير موجودة")
		}
		if !fromSafe.HasFunds(req.Amount) {
			return shared.ErrInsufficientFunds
		}

		if err := repos.TransferRepo().Save(ctx, transfer); err != nil {
			return err
		}
		if err := repos.SafeRepo().AdjustBalance(ctx, tenantID, req.FromSafeID, req.Amount.Neg()); err != nil {
			return err
		}
		return repos.SafeRepo().AdjustBalance(ctx, tenantID, req.ToSafeID, req.Amount)
	})
	if err != nil {
		// Release the reservation so a retry with the same key is not
		// resolved against a transfer that was never persisted.
		if reservedKey != "" {
			_ = s.idemStore.Delete(ctx, reservedKey)
		}
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// GetTransfer gets a transfer by ID
func (s *TransferService) GetTransfer(ctx context.Context, tenantID, id uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.transferRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "التحويل غير موجود")
	}
	return toTransferResponse(transfer), nil
}

// ListTransfers lists transfers with filtering
func (s *TransferService) ListTransfers(ctx context.Context, tenantID uuid.UUID, filter TransferListFilter) ([]TransferResponse, int64, error) {
	domainFilter := filter.toDomain()
	transfers, err := s.transferRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.transferRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = *toTransferResponse(&transfers[i])
	}
	return responses, total, nil
}

// UpdateTransfer changes the amount or description of a transfer. The old
// amount is reversed on both safes before the new amount is applied, with the
// funds check re-run against the source safe's post-reversal balance.
func (s *TransferService) UpdateTransfer(ctx context.Context, tenantID, id uuid.UUID, req UpdateTransferRequest) (*TransferResponse, error) {
	var transfer *treasury.Transfer
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		transfer, err = repos.TransferRepo().FindByIDForTenant(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return shared.NewDomainError("NOT_FOUND", "التحويل غير موجود")
		}

		if req.Description != nil {
			transfer.Description = *req.Description
		}
		if req.Amount != nil && !req.Amount.Equal(transfer.Amount) {
			oldAmount := transfer.Amount

			// Reverse first so the funds check sees the source balance
			// without this transfer applied.
			if err := repos.SafeRepo().AdjustBalance(ctx, tenantID, transfer.FromSafeID, oldAmount); err != nil {
				return err
			}
			if err := repos.SafeRepo().AdjustBalance(ctx, tenantID, transfer.ToSafeID, oldAmount.Neg()); err != nil {
				return err
			}

			fromSafe, err := repos.SafeRepo().FindByIDForTenant(ctx, tenantID, transfer.FromSafeID)
			if err != nil {
				return err
			}
			if fromSafe == nil {
				return shared.NewDomainError("NOT_FOUND", "خزنة التحويل غير موجودة")
			}
			if !fromSafe.HasFunds(*req.Amount) {
				return shared.ErrInsufficientFunds
			}

			transfer.Amount = *req.Amount
			if err := repos.SafeRepo().AdjustBalance(ctx, tenantID, transfer.FromSafeID, req.Amount.Neg()); err != nil {
				return err
			}
			if err := repos.SafeRepo().AdjustBalance(ctx, tenantID, transfer.ToSafeID, *req.Amount); err != nil {
				return err
			}
		}

		transfer.IncrementVersion()
		return repos.TransferRepo().Save(ctx, transfer)
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// DeleteTransfer soft deletes a transfer and reverses both balance moves in
// one transaction.
func (s *TransferService) DeleteTransfer(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		transfer, err := repos.TransferRepo().FindByIDForTenant(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return shared.NewDomainError("NOT_FOUND", "التحويل غير موجود")
		}
		if err := repos.TransferRepo().Delete(ctx, tenantID, id); err != nil {
			return err
		}
		if err := repos.SafeRepo().AdjustBalance(ctx, tenantID, transfer.FromSafeID, transfer.Amount); err != nil {
			return err
		}
		return repos.SafeRepo().AdjustBalance(ctx, tenantID, transfer.ToSafeID, transfer.Amount.Neg())
	})
}
