package sales

import (
	"time"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contract binds one property unit to one customer at an agreed price.
// Business rule: at most one non-deleted contract per unit.
type Contract struct {
	shared.TenantAggregateRoot
	UnitID           uuid.UUID       `json:"unit_id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	BrokerID         *uuid.UUID      `json:"broker_id,omitempty"`
	ContractDate     time.Time       `json:"contract_date"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	BrokerPercent    decimal.Decimal `json:"broker_percent"`
	BrokerAmount     decimal.Decimal `json:"broker_amount"`
	InstallmentCount int             `json:"installment_count"`
	Notes            string          `json:"notes,omitempty"`
}

// NewContract creates a new contract. When brokerAmount is nil it is derived
// as totalPrice * brokerPercent / 100.
func NewContract(
	tenantID, unitID, customerID uuid.UUID,
	contractDate time.Time,
	totalPrice, discountAmount, brokerPercent decimal.Decimal,
	brokerAmount *decimal.Decimal,
	installmentCount int,
) (*Contract, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "الوحدة مطلوبة")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "العميل مطلوب")
	}
	if contractDate.IsZero() {
		contractDate = time.Now().UTC()
	}
	if totalPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "قيمة العقد يجب أن تكون أكبر من صفر")
	}
	if discountAmount.IsNegative() || discountAmount.GreaterThan(totalPrice) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "قيمة الخصم غير صالحة")
	}
	if brokerPercent.IsNegative() || brokerPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "نسبة السمسار غير صالحة")
	}
	if installmentCount < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "عدد الأقساط غير صالح")
	}

	derived := totalPrice.Mul(brokerPercent).Div(decimal.NewFromInt(100)).Round(2)
	if brokerAmount != nil {
		if brokerAmount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "عمولة السمسار لا يمكن أن تكون سالبة")
		}
		derived = *brokerAmount
	}

	return &Contract{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		UnitID:              unitID,
		CustomerID:          customerID,
		ContractDate:        contractDate,
		TotalPrice:          totalPrice,
		DiscountAmount:      discountAmount,
		BrokerPercent:       brokerPercent,
		BrokerAmount:        derived,
		InstallmentCount:    installmentCount,
	}, nil
}

// SetBroker attaches a broker to the contract
func (c *Contract) SetBroker(brokerID uuid.UUID) {
	c.BrokerID = &brokerID
	c.IncrementVersion()
}

// SetNotes sets free-form notes
func (c *Contract) SetNotes(notes string) {
	c.Notes = notes
	c.IncrementVersion()
}

// NetPrice returns the contract value after discount
func (c *Contract) NetPrice() decimal.Decimal {
	return c.TotalPrice.Sub(c.DiscountAmount)
}

// InstallmentAmount splits the net price evenly across the schedule, rounding
// to piasters; the last installment absorbs the rounding remainder.
func (c *Contract) InstallmentAmount() decimal.Decimal {
	if c.InstallmentCount <= 0 {
		return decimal.Zero
	}
	return c.NetPrice().Div(decimal.NewFromInt(int64(c.InstallmentCount))).Round(2)
}

// BuildSchedule generates the monthly installment schedule for the contract.
func (c *Contract) BuildSchedule() []*Installment {
	if c.InstallmentCount <= 0 {
		return nil
	}
	per := c.InstallmentAmount()
	installments := make([]*Installment, 0, c.InstallmentCount)
	remaining := c.NetPrice()
	for i := 1; i <= c.InstallmentCount; i++ {
		amount := per
		if i == c.InstallmentCount {
			amount = remaining
		}
		due := c.ContractDate.AddDate(0, i, 0)
		inst := newScheduledInstallment(c.TenantID, c.UnitID, c.ID, amount, due)
		installments = append(installments, inst)
		remaining = remaining.Sub(amount)
	}
	return installments
}
