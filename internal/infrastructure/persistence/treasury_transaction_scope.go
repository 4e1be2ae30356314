package persistence

import (
	"context"

	apptreasury "github.com/estateops/backend/internal/application/treasury"
	"github.com/estateops/backend/internal/domain/treasury"
	"gorm.io/gorm"
)

// GormTreasuryTransactionScope implements the treasury TransactionScope using
// GORM transactions. It provides atomic execution of multiple repository
// operations.
type GormTreasuryTransactionScope struct {
	db *gorm.DB
}

// NewGormTreasuryTransactionScope creates a new GormTreasuryTransactionScope.
func NewGormTreasuryTransactionScope(db *gorm.DB) *GormTreasuryTransactionScope {
	return &GormTreasuryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTreasuryTransactionScope) Execute(ctx context.Context, fn func(repos apptreasury.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTreasuryTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTreasuryTransactionalRepositories provides access to all treasury repositories within a transaction.
type gormTreasuryTransactionalRepositories struct {
	tx *gorm.DB
}

// SafeRepo returns the safe repository scoped to the current transaction.
func (r *gormTreasuryTransactionalRepositories) SafeRepo() treasury.SafeRepository {
	return NewGormSafeRepository(r.tx)
}

// VoucherRepo returns the voucher repository scoped to the current transaction.
func (r *gormTreasuryTransactionalRepositories) VoucherRepo() treasury.VoucherRepository {
	return NewGormVoucherRepository(r.tx)
}

// TransferRepo returns the transfer repository scoped to the current transaction.
func (r *gormTreasuryTransactionalRepositories) TransferRepo() treasury.TransferRepository {
	return NewGormTransferRepository(r.tx)
}

// Ensure GormTreasuryTransactionScope implements TransactionScope
var _ apptreasury.TransactionScope = (*GormTreasuryTransactionScope)(nil)

// Ensure gormTreasuryTransactionalRepositories implements TransactionalRepositories
var _ apptreasury.TransactionalRepositories = (*gormTreasuryTransactionalRepositories)(nil)
