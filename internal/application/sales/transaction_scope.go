package sales

import (
	"context"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/treasury"
)

// TransactionScope provides transactional access to the repositories a sales
// workflow touches. Contract creation writes the contract, its installment
// schedule, the broker due and the unit status flip in one transaction;
// installment payment may additionally write a receipt voucher and the safe
// balance delta.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all sales-side repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// ContractRepo returns the contract repository scoped to the current transaction
	ContractRepo() sales.ContractRepository
	// InstallmentRepo returns the installment repository scoped to the current transaction
	InstallmentRepo() sales.InstallmentRepository
	// UnitRepo returns the unit repository scoped to the current transaction
	UnitRepo() property.UnitRepository
	// BrokerDueRepo returns the broker due repository scoped to the current transaction
	BrokerDueRepo() partner.BrokerDueRepository
	// SafeRepo returns the safe repository scoped to the current transaction
	SafeRepo() treasury.SafeRepository
	// VoucherRepo returns the voucher repository scoped to the current transaction
	VoucherRepo() treasury.VoucherRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	contractRepo    sales.ContractRepository
	installmentRepo sales.InstallmentRepository
	unitRepo        property.UnitRepository
	brokerDueRepo   partner.BrokerDueRepository
	safeRepo        treasury.SafeRepository
	voucherRepo     treasury.VoucherRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	contractRepo sales.ContractRepository,
	installmentRepo sales.InstallmentRepository,
	unitRepo property.UnitRepository,
	brokerDueRepo partner.BrokerDueRepository,
	safeRepo treasury.SafeRepository,
	voucherRepo treasury.VoucherRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		contractRepo:    contractRepo,
		installmentRepo: installmentRepo,
		unitRepo:        unitRepo,
		brokerDueRepo:   brokerDueRepo,
		safeRepo:        safeRepo,
		voucherRepo:     voucherRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ContractRepo returns the contract repository.
func (s *NoOpTransactionScope) ContractRepo() sales.ContractRepository {
	return s.contractRepo
}

// InstallmentRepo returns the installment repository.
func (s *NoOpTransactionScope) InstallmentRepo() sales.InstallmentRepository {
	return s.installmentRepo
}

// UnitRepo returns the unit repository.
func (s *NoOpTransactionScope) UnitRepo() property.UnitRepository {
	return s.unitRepo
}

// BrokerDueRepo returns the broker due repository.
func (s *NoOpTransactionScope) BrokerDueRepo() partner.BrokerDueRepository {
	return s.brokerDueRepo
}

// SafeRepo returns the safe repository.
func (s *NoOpTransactionScope) SafeRepo() treasury.SafeRepository {
	return s.safeRepo
}

// VoucherRepo returns the voucher repository.
func (s *NoOpTransactionScope) VoucherRepo() treasury.VoucherRepository {
	return s.voucherRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
