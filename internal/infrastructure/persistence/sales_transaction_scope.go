package persistence

import (
	"context"

	appsales "github.com/estateops/backend/internal/application/sales"
	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/treasury"
	"gorm.io/gorm"
)

// GormSalesTransactionScope implements the sales TransactionScope using GORM
// transactions. It provides atomic execution of multiple repository
// operations.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope.
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormSalesTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormSalesTransactionalRepositories provides access to all sales-side repositories within a transaction.
type gormSalesTransactionalRepositories struct {
	tx *gorm.DB
}

// ContractRepo returns the contract repository scoped to the current transaction.
func (r *gormSalesTransactionalRepositories) ContractRepo() sales.ContractRepository {
	return NewGormContractRepository(r.tx)
}

// InstallmentRepo returns the installment repository scoped to the current transaction.
func (r *gormSalesTransactionalRepositories) InstallmentRepo() sales.InstallmentRepository {
	return NewGormInstallmentRepository(r.tx)
}

// UnitRepo returns the unit repository scoped to the current transaction.
func (r *gormSalesTransactionalRepositories) UnitRepo() property.UnitRepository {
	return NewGormUnitRepository(r.tx)
}

// BrokerDueRepo returns the broker due repository scoped to the current transaction.
func (r *gormSalesTransactionalRepositories) BrokerDueRepo() partner.BrokerDueRepository {
	return NewGormBrokerDueRepository(r.tx)
}

// SafeRepo returns the safe repository scoped to the current transaction.
func (r *gormSalesTransactionalRepositories) SafeRepo() treasury.SafeRepository {
	return NewGormSafeRepository(r.tx)
}

// VoucherRepo returns the voucher repository scoped to the current transaction.
func (r *gormSalesTransactionalRepositories) VoucherRepo() treasury.VoucherRepository {
	return NewGormVoucherRepository(r.tx)
}

// Ensure GormSalesTransactionScope implements TransactionScope
var _ appsales.TransactionScope = (*GormSalesTransactionScope)(nil)

// Ensure gormSalesTransactionalRepositories implements TransactionalRepositories
var _ appsales.TransactionalRepositories = (*gormSalesTransactionalRepositories)(nil)
