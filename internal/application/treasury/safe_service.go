package treasury

import (
	"context"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
)

// SafeService provides application-level safe operations
type SafeService struct {
	safeRepo     treasury.SafeRepository
	voucherRepo  treasury.VoucherRepository
	transferRepo treasury.TransferRepository
	txScope      TransactionScope
}

// NewSafeService creates a new SafeService
func NewSafeService(
	safeRepo treasury.SafeRepository,
	voucherRepo treasury.VoucherRepository,
	transferRepo treasury.TransferRepository,
	txScope TransactionScope,
) *SafeService {
	return &SafeService{
		safeRepo:     safeRepo,
		voucherRepo:  voucherRepo,
		transferRepo: transferRepo,
		txScope:      txScope,
	}
}

// CreateSafe creates a new safe with an optional opening balance
func (s *SafeService) CreateSafe(ctx context.Context, tenantID uuid.UUID, req CreateSafeRequest) (*SafeResponse, error) {
	exists, err := s.safeRepo.ExistsByName(ctx, tenantID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "يوجد خزنة بنفس الاسم")
	}

	safe, err := treasury.NewSafe(tenantID, req.Name, req.OpeningBalance)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		safe.Notes = req.Notes
	}

	if err := s.safeRepo.Save(ctx, safe); err != nil {
		return nil, err
	}
	return toSafeResponse(safe), nil
}

// GetSafe gets a safe by ID
func (s *SafeService) GetSafe(ctx context.Context, tenantID, id uuid.UUID) (*SafeResponse, error) {
	safe, err := s.safeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if safe == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "الخزنة غير موجودة")
	}
	return toSafeResponse(safe), nil
}

// ListSafes lists safes for a tenant with pagination
func (s *SafeService) ListSafes(ctx context.Context, tenantID uuid.UUID, page, pageSize int) ([]SafeResponse, int64, error) {
	safes, err := s.safeRepo.FindAllForTenant(ctx, tenantID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.safeRepo.CountForTenant(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SafeResponse, len(safes))
	for i := range safes {
		responses[i] = *toSafeResponse(&safes[i])
	}
	return responses, total, nil
}

// UpdateSafe renames a safe and updates its notes
func (s *SafeService) UpdateSafe(ctx context.Context, tenantID, id uuid.UUID, req UpdateSafeRequest) (*SafeResponse, error) {
	safe, err := s.safeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if safe == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "الخزنة غير موجودة")
	}

	if req.Name != safe.Name {
		exists, err := s.safeRepo.ExistsByName(ctx, tenantID, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "يوجد خزنة بنفس الاسم")
		}
	}

	if err := safe.Rename(req.Name); err != nil {
		return nil, err
	}
	safe.Notes = req.Notes

	if err := s.safeRepo.Save(ctx, safe); err != nil {
		return nil, err
	}
	return toSafeResponse(safe), nil
}

// DeleteSafe soft deletes a safe. The safe must hold a zero balance and must
// not be referenced by any non-deleted voucher or transfer; the checks and the
// delete run in one transaction so a concurrent voucher cannot slip in between.
func (s *SafeService) DeleteSafe(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		safe, err := repos.SafeRepo().FindByIDForTenant(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if safe == nil {
			return shared.NewDomainError("NOT_FOUND", "الخزنة غير موجودة")
		}

		voucherCount, err := repos.VoucherRepo().CountBySafe(ctx, tenantID, id)
		if err != nil {
			return err
		}
		transferCount, err := repos.TransferRepo().CountBySafe(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := safe.CanBeDeleted(voucherCount + transferCount); err != nil {
			return err
		}

		return repos.SafeRepo().Delete(ctx, tenantID, id)
	})
}
