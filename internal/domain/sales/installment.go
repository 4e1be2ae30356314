package sales

import (
	"time"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentStatus represents the payment state of an installment
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "PENDING" // معلق
	InstallmentStatusPaid    InstallmentStatus = "PAID"    // مدفوع
)

// IsValid checks if the status is a valid InstallmentStatus
func (s InstallmentStatus) IsValid() bool {
	return s == InstallmentStatusPending || s == InstallmentStatusPaid
}

// String returns the string representation of InstallmentStatus
func (s InstallmentStatus) String() string {
	return string(s)
}

// DisplayName returns the Arabic display name for the status
func (s InstallmentStatus) DisplayName() string {
	switch s {
	case InstallmentStatusPending:
		return "معلق"
	case InstallmentStatusPaid:
		return "مدفوع"
	}
	return string(s)
}

// Installment is a scheduled partial payment owed against a contract's unit.
// Overdue is derived (due date passed while still pending), never stored.
type Installment struct {
	shared.TenantAggregateRoot
	UnitID     uuid.UUID         `json:"unit_id"`
	ContractID uuid.UUID         `json:"contract_id"`
	Amount     decimal.Decimal   `json:"amount"`
	DueDate    time.Time         `json:"due_date"`
	Status     InstallmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	PaidAt     *time.Time        `json:"paid_at,omitempty"`
}

// NewInstallment creates a pending installment
func NewInstallment(tenantID, unitID, contractID uuid.UUID, amount decimal.Decimal, dueDate time.Time) (*Installment, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "الوحدة مطلوبة")
	}
	if contractID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONTRACT", "العقد مطلوب")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "قيمة القسط يجب أن تكون أكبر من صفر")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "تاريخ الاستحقاق مطلوب")
	}
	return newScheduledInstallment(tenantID, unitID, contractID, amount, dueDate), nil
}

func newScheduledInstallment(tenantID, unitID, contractID uuid.UUID, amount decimal.Decimal, dueDate time.Time) *Installment {
	return &Installment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		UnitID:              unitID,
		ContractID:          contractID,
		Amount:              amount,
		DueDate:             dueDate,
		Status:              InstallmentStatusPending,
	}
}

// MarkPaid transitions PENDING -> PAID
func (i *Installment) MarkPaid(notes string) error {
	if i.Status == InstallmentStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "القسط مدفوع بالفعل")
	}
	now := time.Now().UTC()
	i.Status = InstallmentStatusPaid
	i.PaidAt = &now
	if notes != "" {
		i.Notes = notes
	}
	i.IncrementVersion()
	return nil
}

// MarkPending reverts PAID -> PENDING (correction path)
func (i *Installment) MarkPending(notes string) error {
	if i.Status == InstallmentStatusPending {
		return shared.NewDomainError("INVALID_STATE", "القسط معلق بالفعل")
	}
	i.Status = InstallmentStatusPending
	i.PaidAt = nil
	if notes != "" {
		i.Notes = notes
	}
	i.IncrementVersion()
	return nil
}

// IsOverdue returns true when the due date has passed and the installment is
// still pending.
func (i *Installment) IsOverdue(now time.Time) bool {
	return i.Status == InstallmentStatusPending && i.DueDate.Before(now)
}
