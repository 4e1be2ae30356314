package partner

import (
	"time"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Partner is a co-investor reference entity. Deletion is blocked while debts
// reference the partner.
type Partner struct {
	shared.TenantAggregateRoot
	Name         string          `json:"name"`
	Phone        string          `json:"phone,omitempty"`
	SharePercent decimal.Decimal `json:"share_percent"`
	Notes        string          `json:"notes,omitempty"`
}

// NewPartner creates a new partner
func NewPartner(tenantID uuid.UUID, name, phone string, sharePercent decimal.Decimal) (*Partner, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "اسم الشريك مطلوب")
	}
	if sharePercent.IsNegative() || sharePercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "نسبة الشراكة غير صالحة")
	}
	return &Partner{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Phone:               phone,
		SharePercent:        sharePercent,
	}, nil
}

// Update changes the partner's descriptive fields
func (p *Partner) Update(name, phone, notes string, sharePercent decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "اسم الشريك مطلوب")
	}
	if sharePercent.IsNegative() || sharePercent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_AMOUNT", "نسبة الشراكة غير صالحة")
	}
	p.Name = name
	p.Phone = phone
	p.Notes = notes
	p.SharePercent = sharePercent
	p.IncrementVersion()
	return nil
}

// PartnerDebtStatus represents the settlement state of a partner debt
type PartnerDebtStatus string

const (
	PartnerDebtStatusPending PartnerDebtStatus = "PENDING"
	PartnerDebtStatusSettled PartnerDebtStatus = "SETTLED"
)

// IsValid checks if the status is a valid PartnerDebtStatus
func (s PartnerDebtStatus) IsValid() bool {
	return s == PartnerDebtStatusPending || s == PartnerDebtStatusSettled
}

// PartnerDebt is an amount owed to or by a partner
type PartnerDebt struct {
	shared.TenantAggregateRoot
	PartnerID uuid.UUID         `json:"partner_id"`
	Amount    decimal.Decimal   `json:"amount"`
	DueDate   time.Time         `json:"due_date"`
	Status    PartnerDebtStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
}

// NewPartnerDebt creates a pending partner debt
func NewPartnerDebt(tenantID, partnerID uuid.UUID, amount decimal.Decimal, dueDate time.Time) (*PartnerDebt, error) {
	if partnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTNER", "الشريك مطلوب")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "قيمة المديونية يجب أن تكون أكبر من صفر")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "تاريخ الاستحقاق مطلوب")
	}
	return &PartnerDebt{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PartnerID:           partnerID,
		Amount:              amount,
		DueDate:             dueDate,
		Status:              PartnerDebtStatusPending,
	}, nil
}

// Settle transitions PENDING -> SETTLED
func (d *PartnerDebt) Settle() error {
	if d.Status == PartnerDebtStatusSettled {
		return shared.NewDomainError("INVALID_STATE", "المديونية مسددة بالفعل")
	}
	d.Status = PartnerDebtStatusSettled
	d.IncrementVersion()
	return nil
}
