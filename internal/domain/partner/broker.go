package partner

import (
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Broker is a sales intermediary. A default commission percent is applied to
// contracts that do not override it.
type Broker struct {
	shared.TenantAggregateRoot
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	DefaultPercent decimal.Decimal `json:"default_percent"`
	Notes          string          `json:"notes,omitempty"`
}

// NewBroker creates a new broker
func NewBroker(tenantID uuid.UUID, name, phone string, defaultPercent decimal.Decimal) (*Broker, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "اسم السمسار مطلوب")
	}
	if defaultPercent.IsNegative() || defaultPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "نسبة العمولة غير صالحة")
	}
	return &Broker{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Phone:               phone,
		DefaultPercent:      defaultPercent,
	}, nil
}

// Update changes the broker's descriptive fields
func (b *Broker) Update(name, phone, notes string, defaultPercent decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "اسم السمسار مطلوب")
	}
	if defaultPercent.IsNegative() || defaultPercent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_AMOUNT", "نسبة العمولة غير صالحة")
	}
	b.Name = name
	b.Phone = phone
	b.Notes = notes
	b.DefaultPercent = defaultPercent
	b.IncrementVersion()
	return nil
}

// BrokerDueStatus represents the payment state of a broker commission
type BrokerDueStatus string

const (
	BrokerDueStatusPending BrokerDueStatus = "PENDING"
	BrokerDueStatusPaid    BrokerDueStatus = "PAID"
)

// IsValid checks if the status is a valid BrokerDueStatus
func (s BrokerDueStatus) IsValid() bool {
	return s == BrokerDueStatusPending || s == BrokerDueStatusPaid
}

// BrokerDue is a commission owed to a broker for one contract. It is created
// automatically when a contract carrying a broker is created.
type BrokerDue struct {
	shared.TenantAggregateRoot
	BrokerID   uuid.UUID       `json:"broker_id"`
	ContractID uuid.UUID       `json:"contract_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     BrokerDueStatus `json:"status"`
	Notes      string          `json:"notes,omitempty"`
}

// NewBrokerDue creates a pending broker due
func NewBrokerDue(tenantID, brokerID, contractID uuid.UUID, amount decimal.Decimal) (*BrokerDue, error) {
	if brokerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BROKER", "السمسار مطلوب")
	}
	if contractID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONTRACT", "العقد مطلوب")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "قيمة العمولة يجب أن تكون أكبر من صفر")
	}
	return &BrokerDue{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BrokerID:            brokerID,
		ContractID:          contractID,
		Amount:              amount,
		Status:              BrokerDueStatusPending,
	}, nil
}

// MarkPaid transitions PENDING -> PAID
func (d *BrokerDue) MarkPaid() error {
	if d.Status == BrokerDueStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "العمولة مدفوعة بالفعل")
	}
	d.Status = BrokerDueStatusPaid
	d.IncrementVersion()
	return nil
}
