package models

import (
	"time"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer aggregate root.
type CustomerModel struct {
	TenantAggregateModel
	Name       string `gorm:"type:varchar(200);not null;index"`
	Phone      string `gorm:"type:varchar(30)"`
	NationalID string `gorm:"type:varchar(30)"`
	Address    string `gorm:"type:varchar(500)"`
	Notes      string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		Name:                m.Name,
		Phone:               m.Phone,
		NationalID:          m.NationalID,
		Address:             m.Address,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Name = c.Name
	m.Phone = c.Phone
	m.NationalID = c.NationalID
	m.Address = c.Address
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// BrokerModel is the persistence model for the Broker aggregate root.
type BrokerModel struct {
	TenantAggregateModel
	Name           string          `gorm:"type:varchar(200);not null;index"`
	Phone          string          `gorm:"type:varchar(30)"`
	DefaultPercent decimal.Decimal `gorm:"type:decimal(6,3);not null;default:0"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BrokerModel) TableName() string {
	return "brokers"
}

// ToDomain converts the persistence model to a domain Broker
func (m *BrokerModel) ToDomain() *partner.Broker {
	return &partner.Broker{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		Name:                m.Name,
		Phone:               m.Phone,
		DefaultPercent:      m.DefaultPercent,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Broker
func (m *BrokerModel) FromDomain(b *partner.Broker) {
	m.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	m.Name = b.Name
	m.Phone = b.Phone
	m.DefaultPercent = b.DefaultPercent
	m.Notes = b.Notes
}

// BrokerModelFromDomain creates a new persistence model from a domain Broker
func BrokerModelFromDomain(b *partner.Broker) *BrokerModel {
	m := &BrokerModel{}
	m.FromDomain(b)
	return m
}

// BrokerDueModel is the persistence model for the BrokerDue aggregate root.
type BrokerDueModel struct {
	TenantAggregateModel
	BrokerID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	ContractID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Status     partner.BrokerDueStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Notes      string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BrokerDueModel) TableName() string {
	return "broker_dues"
}

// ToDomain converts the persistence model to a domain BrokerDue
func (m *BrokerDueModel) ToDomain() *partner.BrokerDue {
	return &partner.BrokerDue{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		BrokerID:            m.BrokerID,
		ContractID:          m.ContractID,
		Amount:              m.Amount,
		Status:              m.Status,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain BrokerDue
func (m *BrokerDueModel) FromDomain(d *partner.BrokerDue) {
	m.FromDomainTenantAggregateRoot(d.TenantAggregateRoot)
	m.BrokerID = d.BrokerID
	m.ContractID = d.ContractID
	m.Amount = d.Amount
	m.Status = d.Status
	m.Notes = d.Notes
}

// BrokerDueModelFromDomain creates a new persistence model from a domain BrokerDue
func BrokerDueModelFromDomain(d *partner.BrokerDue) *BrokerDueModel {
	m := &BrokerDueModel{}
	m.FromDomain(d)
	return m
}

// PartnerModel is the persistence model for the Partner aggregate root.
type PartnerModel struct {
	TenantAggregateModel
	Name         string          `gorm:"type:varchar(200);not null;index"`
	Phone        string          `gorm:"type:varchar(30)"`
	SharePercent decimal.Decimal `gorm:"type:decimal(6,3);not null;default:0"`
	Notes        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PartnerModel) TableName() string {
	return "partners"
}

// ToDomain converts the persistence model to a domain Partner
func (m *PartnerModel) ToDomain() *partner.Partner {
	return &partner.Partner{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		Name:                m.Name,
		Phone:               m.Phone,
		SharePercent:        m.SharePercent,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Partner
func (m *PartnerModel) FromDomain(p *partner.Partner) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.Name = p.Name
	m.Phone = p.Phone
	m.SharePercent = p.SharePercent
	m.Notes = p.Notes
}

// PartnerModelFromDomain creates a new persistence model from a domain Partner
func PartnerModelFromDomain(p *partner.Partner) *PartnerModel {
	m := &PartnerModel{}
	m.FromDomain(p)
	return m
}

// PartnerDebtModel is the persistence model for the PartnerDebt aggregate root.
type PartnerDebtModel struct {
	TenantAggregateModel
	PartnerID uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal           `gorm:"type:decimal(18,4);not null"`
	DueDate   time.Time                 `gorm:"not null;index"`
	Status    partner.PartnerDebtStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Notes     string                    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PartnerDebtModel) TableName() string {
	return "partner_debts"
}

// ToDomain converts the persistence model to a domain PartnerDebt
func (m *PartnerDebtModel) ToDomain() *partner.PartnerDebt {
	return &partner.PartnerDebt{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		PartnerID:           m.PartnerID,
		Amount:              m.Amount,
		DueDate:             m.DueDate,
		Status:              m.Status,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain PartnerDebt
func (m *PartnerDebtModel) FromDomain(d *partner.PartnerDebt) {
	m.FromDomainTenantAggregateRoot(d.TenantAggregateRoot)
	m.PartnerID = d.PartnerID
	m.Amount = d.Amount
	m.DueDate = d.DueDate
	m.Status = d.Status
	m.Notes = d.Notes
}

// PartnerDebtModelFromDomain creates a new persistence model from a domain PartnerDebt
func PartnerDebtModelFromDomain(d *partner.PartnerDebt) *PartnerDebtModel {
	m := &PartnerDebtModel{}
	m.FromDomain(d)
	return m
}
