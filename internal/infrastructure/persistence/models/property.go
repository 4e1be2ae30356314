package models

import (
	"github.com/estateops/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// UnitModel is the persistence model for the Unit aggregate root.
type UnitModel struct {
	TenantAggregateModel
	Code       string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_unit_tenant_code,priority:2"`
	Name       string              `gorm:"type:varchar(200)"`
	UnitType   string              `gorm:"type:varchar(50);not null;index"`
	Address    string              `gorm:"type:varchar(500)"`
	Area       decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	TotalPrice decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Status     property.UnitStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	Notes      string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit
func (m *UnitModel) ToDomain() *property.Unit {
	return &property.Unit{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		Code:                m.Code,
		Name:                m.Name,
		UnitType:            m.UnitType,
		Address:             m.Address,
		Area:                m.Area,
		TotalPrice:          m.TotalPrice,
		Status:              m.Status,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Unit
func (m *UnitModel) FromDomain(u *property.Unit) {
	m.FromDomainTenantAggregateRoot(u.TenantAggregateRoot)
	m.Code = u.Code
	m.Name = u.Name
	m.UnitType = u.UnitType
	m.Address = u.Address
	m.Area = u.Area
	m.TotalPrice = u.TotalPrice
	m.Status = u.Status
	m.Notes = u.Notes
}

// UnitModelFromDomain creates a new persistence model from a domain Unit
func UnitModelFromDomain(u *property.Unit) *UnitModel {
	m := &UnitModel{}
	m.FromDomain(u)
	return m
}
