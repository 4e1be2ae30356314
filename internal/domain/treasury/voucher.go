package treasury

import (
	"time"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherType distinguishes money in (receipt) from money out (payment)
type VoucherType string

const (
	VoucherTypeReceipt VoucherType = "RECEIPT" // سند قبض
	VoucherTypePayment VoucherType = "PAYMENT" // سند صرف
)

// IsValid checks if the voucher type is valid
func (t VoucherType) IsValid() bool {
	return t == VoucherTypeReceipt || t == VoucherTypePayment
}

// String returns the string representation of VoucherType
func (t VoucherType) String() string {
	return string(t)
}

// DisplayName returns the Arabic display name for the voucher type
func (t VoucherType) DisplayName() string {
	switch t {
	case VoucherTypeReceipt:
		return "سند قبض"
	case VoucherTypePayment:
		return "سند صرف"
	}
	return string(t)
}

// Voucher is a receipt or payment transaction against a safe, optionally
// linked to a property unit. Creating, updating, or deleting a voucher
// adjusts the safe balance by the signed amount.
type Voucher struct {
	shared.TenantAggregateRoot
	Type        VoucherType     `json:"type"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	SafeID      uuid.UUID       `json:"safe_id"`
	UnitID      *uuid.UUID      `json:"unit_id,omitempty"`
	Description string          `json:"description"`
	Payer       string          `json:"payer,omitempty"`
	Beneficiary string          `json:"beneficiary,omitempty"`
}

// NewVoucher creates a new voucher
func NewVoucher(
	tenantID uuid.UUID,
	voucherType VoucherType,
	date time.Time,
	amount decimal.Decimal,
	safeID uuid.UUID,
	description string,
) (*Voucher, error) {
	if !voucherType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "نوع السند غير صالح")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "تاريخ السند مطلوب")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "مبلغ السند يجب أن يكون أكبر من صفر")
	}
	if safeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SAFE", "الخزنة مطلوبة")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "بيان السند مطلوب")
	}

	return &Voucher{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Type:                voucherType,
		Date:                date,
		Amount:              amount,
		SafeID:              safeID,
		Description:         description,
	}, nil
}

// SignedAmount returns the balance delta this voucher applies to its safe:
// +amount for receipts, -amount for payments.
func (v *Voucher) SignedAmount() decimal.Decimal {
	if v.Type == VoucherTypePayment {
		return v.Amount.Neg()
	}
	return v.Amount
}

// LinkUnit attaches the voucher to a property unit
func (v *Voucher) LinkUnit(unitID uuid.UUID) {
	v.UnitID = &unitID
	v.IncrementVersion()
}

// SetParties sets the payer and beneficiary names
func (v *Voucher) SetParties(payer, beneficiary string) {
	v.Payer = payer
	v.Beneficiary = beneficiary
	v.IncrementVersion()
}

// VoucherPatch carries the changed fields of an update; nil means unchanged.
type VoucherPatch struct {
	Type        *VoucherType
	Date        *time.Time
	Amount      *decimal.Decimal
	SafeID      *uuid.UUID
	UnitID      *uuid.UUID
	Description *string
	Payer       *string
	Beneficiary *string
}

// Apply merges the patch into the voucher, validating the result. It returns
// the signed amount before the patch so the caller can reverse it on the
// previous safe.
func (v *Voucher) Apply(patch VoucherPatch) (oldSigned decimal.Decimal, oldSafeID uuid.UUID, err error) {
	oldSigned = v.SignedAmount()
	oldSafeID = v.SafeID

	if patch.Type != nil {
		if !patch.Type.IsValid() {
			return oldSigned, oldSafeID, shared.NewDomainError("INVALID_TYPE", "نوع السند غير صالح")
		}
		v.Type = *patch.Type
	}
	if patch.Date != nil {
		if patch.Date.IsZero() {
			return oldSigned, oldSafeID, shared.NewDomainError("INVALID_DATE", "تاريخ السند مطلوب")
		}
		v.Date = *patch.Date
	}
	if patch.Amount != nil {
		if patch.Amount.LessThanOrEqual(decimal.Zero) {
			return oldSigned, oldSafeID, shared.NewDomainError("INVALID_AMOUNT", "مبلغ السند يجب أن يكون أكبر من صفر")
		}
		v.Amount = *patch.Amount
	}
	if patch.SafeID != nil {
		if *patch.SafeID == uuid.Nil {
			return oldSigned, oldSafeID, shared.NewDomainError("INVALID_SAFE", "الخزنة مطلوبة")
		}
		v.SafeID = *patch.SafeID
	}
	if patch.UnitID != nil {
		v.UnitID = patch.UnitID
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			return oldSigned, oldSafeID, shared.NewDomainError("INVALID_DESCRIPTION", "بيان السند مطلوب")
		}
		v.Description = *patch.Description
	}
	if patch.Payer != nil {
		v.Payer = *patch.Payer
	}
	if patch.Beneficiary != nil {
		v.Beneficiary = *patch.Beneficiary
	}

	v.UpdatedAt = time.Now().UTC()
	v.IncrementVersion()
	return oldSigned, oldSafeID, nil
}
