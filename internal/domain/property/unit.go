package property

import (
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitStatus represents the sales state of a property unit
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "AVAILABLE" // متاحة
	UnitStatusReserved  UnitStatus = "RESERVED"  // محجوزة
	UnitStatusSold      UnitStatus = "SOLD"      // مباعة
)

// IsValid checks if the status is a valid UnitStatus
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusAvailable, UnitStatusReserved, UnitStatusSold:
		return true
	}
	return false
}

// String returns the string representation of UnitStatus
func (s UnitStatus) String() string {
	return string(s)
}

// DisplayName returns the Arabic display name for the status
func (s UnitStatus) DisplayName() string {
	switch s {
	case UnitStatusAvailable:
		return "متاحة"
	case UnitStatusReserved:
		return "محجوزة"
	case UnitStatusSold:
		return "مباعة"
	}
	return string(s)
}

// Unit is a sellable property record. Status transitions:
// AVAILABLE -> RESERVED (contract creation), RESERVED -> AVAILABLE (contract
// deletion with no installments), RESERVED -> SOLD (explicit sale or full
// installment payoff).
type Unit struct {
	shared.TenantAggregateRoot
	Code       string          `json:"code"`
	Name       string          `json:"name,omitempty"`
	UnitType   string          `json:"unit_type"`
	Address    string          `json:"address,omitempty"`
	Area       decimal.Decimal `json:"area"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     UnitStatus      `json:"status"`
	Notes      string          `json:"notes,omitempty"`
}

// NewUnit creates a new unit in the AVAILABLE state
func NewUnit(tenantID uuid.UUID, code, unitType string, totalPrice decimal.Decimal) (*Unit, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "كود الوحدة مطلوب")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "كود الوحدة طويل جداً")
	}
	if unitType == "" {
		return nil, shared.NewDomainError("INVALID_TYPE", "نوع الوحدة مطلوب")
	}
	if totalPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "سعر الوحدة لا يمكن أن يكون سالباً")
	}

	return &Unit{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		UnitType:            unitType,
		TotalPrice:          totalPrice,
		Status:              UnitStatusAvailable,
	}, nil
}

// IsAvailable returns true if the unit can be contracted
func (u *Unit) IsAvailable() bool {
	return u.Status == UnitStatusAvailable
}

// IsReserved returns true if the unit is held by a contract
func (u *Unit) IsReserved() bool {
	return u.Status == UnitStatusReserved
}

// Reserve transitions AVAILABLE -> RESERVED on contract creation
func (u *Unit) Reserve() error {
	if u.Status != UnitStatusAvailable {
		return shared.NewDomainError("INVALID_STATE", "الوحدة غير متاحة للتعاقد")
	}
	u.Status = UnitStatusReserved
	u.IncrementVersion()
	return nil
}

// Release transitions RESERVED -> AVAILABLE when the reserving contract is
// deleted and no installments exist.
func (u *Unit) Release() error {
	if u.Status != UnitStatusReserved {
		return shared.NewDomainError("INVALID_STATE", "الوحدة ليست محجوزة")
	}
	u.Status = UnitStatusAvailable
	u.IncrementVersion()
	return nil
}

// Sell transitions RESERVED -> SOLD
func (u *Unit) Sell() error {
	if u.Status != UnitStatusReserved {
		return shared.NewDomainError("INVALID_STATE", "لا يمكن بيع وحدة غير محجوزة")
	}
	u.Status = UnitStatusSold
	u.IncrementVersion()
	return nil
}

// UpdateDetails updates the descriptive fields of the unit
func (u *Unit) UpdateDetails(name, unitType, address, notes string, area, totalPrice decimal.Decimal) error {
	if unitType == "" {
		return shared.NewDomainError("INVALID_TYPE", "نوع الوحدة مطلوب")
	}
	if totalPrice.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "سعر الوحدة لا يمكن أن يكون سالباً")
	}
	u.Name = name
	u.UnitType = unitType
	u.Address = address
	u.Notes = notes
	u.Area = area
	u.TotalPrice = totalPrice
	u.IncrementVersion()
	return nil
}
