package models

import (
	"time"

	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SafeModel is the persistence model for the Safe aggregate root.
type SafeModel struct {
	TenantAggregateModel
	Name    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_safe_tenant_name,priority:2"`
	Balance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Notes   string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SafeModel) TableName() string {
	return "safes"
}

// ToDomain converts the persistence model to a domain Safe
func (m *SafeModel) ToDomain() *treasury.Safe {
	return &treasury.Safe{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		Name:                m.Name,
		Balance:             m.Balance,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Safe
func (m *SafeModel) FromDomain(s *treasury.Safe) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.Name = s.Name
	m.Balance = s.Balance
	m.Notes = s.Notes
}

// SafeModelFromDomain creates a new persistence model from a domain Safe
func SafeModelFromDomain(s *treasury.Safe) *SafeModel {
	m := &SafeModel{}
	m.FromDomain(s)
	return m
}

// VoucherModel is the persistence model for the Voucher aggregate root.
type VoucherModel struct {
	TenantAggregateModel
	Type        treasury.VoucherType `gorm:"type:varchar(10);not null;index"`
	Date        time.Time            `gorm:"not null;index"`
	Amount      decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	SafeID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	UnitID      *uuid.UUID           `gorm:"type:uuid;index"`
	Description string               `gorm:"type:text;not null"`
	Payer       string               `gorm:"type:varchar(200)"`
	Beneficiary string               `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (VoucherModel) TableName() string {
	return "vouchers"
}

// ToDomain converts the persistence model to a domain Voucher
func (m *VoucherModel) ToDomain() *treasury.Voucher {
	return &treasury.Voucher{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		Type:                m.Type,
		Date:                m.Date,
		Amount:              m.Amount,
		SafeID:              m.SafeID,
		UnitID:              m.UnitID,
		Description:         m.Description,
		Payer:               m.Payer,
		Beneficiary:         m.Beneficiary,
	}
}

// FromDomain populates the persistence model from a domain Voucher
func (m *VoucherModel) FromDomain(v *treasury.Voucher) {
	m.FromDomainTenantAggregateRoot(v.TenantAggregateRoot)
	m.Type = v.Type
	m.Date = v.Date
	m.Amount = v.Amount
	m.SafeID = v.SafeID
	m.UnitID = v.UnitID
	m.Description = v.Description
	m.Payer = v.Payer
	m.Beneficiary = v.Beneficiary
}

// VoucherModelFromDomain creates a new persistence model from a domain Voucher
func VoucherModelFromDomain(v *treasury.Voucher) *VoucherModel {
	m := &VoucherModel{}
	m.FromDomain(v)
	return m
}

// TransferModel is the persistence model for the Transfer aggregate root.
type TransferModel struct {
	TenantAggregateModel
	FromSafeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ToSafeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Description string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TransferModel) TableName() string {
	return "transfers"
}

// ToDomain converts the persistence model to a domain Transfer
func (m *TransferModel) ToDomain() *treasury.Transfer {
	return &treasury.Transfer{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		FromSafeID:          m.FromSafeID,
		ToSafeID:            m.ToSafeID,
		Amount:              m.Amount,
		Description:         m.Description,
	}
}

// FromDomain populates the persistence model from a domain Transfer
func (m *TransferModel) FromDomain(t *treasury.Transfer) {
	m.FromDomainTenantAggregateRoot(t.TenantAggregateRoot)
	m.FromSafeID = t.FromSafeID
	m.ToSafeID = t.ToSafeID
	m.Amount = t.Amount
	m.Description = t.Description
}

// TransferModelFromDomain creates a new persistence model from a domain Transfer
func TransferModelFromDomain(t *treasury.Transfer) *TransferModel {
	m := &TransferModel{}
	m.FromDomain(t)
	return m
}
