package treasury

import (
	"context"

	"github.com/estateops/backend/internal/domain/treasury"
)

// TransactionScope provides transactional access to treasury repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all treasury repositories within a transaction.
// All repositories returned share the same underlying database transaction, so a
// voucher or transfer row and the safe balance deltas it implies always commit together.
type TransactionalRepositories interface {
	// SafeRepo returns the safe repository scoped to the current transaction
	SafeRepo() treasury.SafeRepository
	// VoucherRepo returns the voucher repository scoped to the current transaction
	VoucherRepo() treasury.VoucherRepository
	// TransferRepo returns the transfer repository scoped to the current transaction
	TransferRepo() treasury.TransferRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	safeRepo     treasury.SafeRepository
	voucherRepo  treasury.VoucherRepository
	transferRepo treasury.TransferRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	safeRepo treasury.SafeRepository,
	voucherRepo treasury.VoucherRepository,
	transferRepo treasury.TransferRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		safeRepo:     safeRepo,
		voucherRepo:  voucherRepo,
		transferRepo: transferRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// SafeRepo returns the safe repository.
func (s *NoOpTransactionScope) SafeRepo() treasury.SafeRepository {
	return s.safeRepo
}

// VoucherRepo returns the voucher repository.
func (s *NoOpTransactionScope) VoucherRepo() treasury.VoucherRepository {
	return s.voucherRepo
}

// TransferRepo returns the transfer repository.
func (s *NoOpTransactionScope) TransferRepo() treasury.TransferRepository {
	return s.transferRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
