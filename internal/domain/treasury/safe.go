package treasury

import (
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Safe represents a named cash till with a running balance.
// The balance is never overwritten directly: ledger operations (vouchers and
// transfers) apply signed deltas through the repository so the stored value
// stays reconstructible from ledger history.
type Safe struct {
	shared.TenantAggregateRoot
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Notes   string          `json:"notes"`
}

// NewSafe creates a new safe with a non-negative opening balance
func NewSafe(tenantID uuid.UUID, name string, openingBalance decimal.Decimal) (*Safe, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "اسم الخزنة مطلوب")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "اسم الخزنة طويل جداً")
	}
	if openingBalance.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "الرصيد الافتتاحي لا يمكن أن يكون سالباً")
	}

	return &Safe{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Balance:             openingBalance,
	}, nil
}

// Rename changes the safe name
func (s *Safe) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "اسم الخزنة مطلوب")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "اسم الخزنة طويل جداً")
	}
	s.Name = name
	s.IncrementVersion()
	return nil
}

// SetNotes sets free-form notes on the safe
func (s *Safe) SetNotes(notes string) {
	s.Notes = notes
	s.IncrementVersion()
}

// CanBeDeleted checks the deletion preconditions: zero balance and no
// referencing ledger rows. The caller supplies the reference count because
// it requires a repository query.
func (s *Safe) CanBeDeleted(referenceCount int64) error {
	if !s.Balance.IsZero() {
		return shared.ErrSafeHasBalance
	}
	if referenceCount > 0 {
		return shared.ErrSafeHasReferences
	}
	return nil
}

// HasFunds returns true if the balance covers the given amount
func (s *Safe) HasFunds(amount decimal.Decimal) bool {
	return s.Balance.GreaterThanOrEqual(amount)
}
