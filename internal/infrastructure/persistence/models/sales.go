package models

import (
	"time"

	"github.com/estateops/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractModel is the persistence model for the Contract aggregate root.
type ContractModel struct {
	TenantAggregateModel
	UnitID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	BrokerID         *uuid.UUID      `gorm:"type:uuid;index"`
	ContractDate     time.Time       `gorm:"not null;index"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DiscountAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	BrokerPercent    decimal.Decimal `gorm:"type:decimal(6,3);not null;default:0"`
	BrokerAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	InstallmentCount int             `gorm:"not null;default:0"`
	Notes            string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the persistence model to a domain Contract
func (m *ContractModel) ToDomain() *sales.Contract {
	return &sales.Contract{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		UnitID:              m.UnitID,
		CustomerID:          m.CustomerID,
		BrokerID:            m.BrokerID,
		ContractDate:        m.ContractDate,
		TotalPrice:          m.TotalPrice,
		DiscountAmount:      m.DiscountAmount,
		BrokerPercent:       m.BrokerPercent,
		BrokerAmount:        m.BrokerAmount,
		InstallmentCount:    m.InstallmentCount,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Contract
func (m *ContractModel) FromDomain(c *sales.Contract) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.UnitID = c.UnitID
	m.CustomerID = c.CustomerID
	m.BrokerID = c.BrokerID
	m.ContractDate = c.ContractDate
	m.TotalPrice = c.TotalPrice
	m.DiscountAmount = c.DiscountAmount
	m.BrokerPercent = c.BrokerPercent
	m.BrokerAmount = c.BrokerAmount
	m.InstallmentCount = c.InstallmentCount
	m.Notes = c.Notes
}

// ContractModelFromDomain creates a new persistence model from a domain Contract
func ContractModelFromDomain(c *sales.Contract) *ContractModel {
	m := &ContractModel{}
	m.FromDomain(c)
	return m
}

// InstallmentModel is the persistence model for the Installment aggregate root.
type InstallmentModel struct {
	TenantAggregateModel
	UnitID     uuid.UUID               `gorm:"type:uuid;not null;index"`
	ContractID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	DueDate    time.Time               `gorm:"not null;index"`
	Status     sales.InstallmentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Notes      string                  `gorm:"type:text"`
	PaidAt     *time.Time
}

// TableName returns the table name for GORM
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToDomain converts the persistence model to a domain Installment
func (m *InstallmentModel) ToDomain() *sales.Installment {
	return &sales.Installment{
		TenantAggregateRoot: m.toTenantAggregateRoot(),
		UnitID:              m.UnitID,
		ContractID:          m.ContractID,
		Amount:              m.Amount,
		DueDate:             m.DueDate,
		Status:              m.Status,
		Notes:               m.Notes,
		PaidAt:              m.PaidAt,
	}
}

// FromDomain populates the persistence model from a domain Installment
func (m *InstallmentModel) FromDomain(i *sales.Installment) {
	m.FromDomainTenantAggregateRoot(i.TenantAggregateRoot)
	m.UnitID = i.UnitID
	m.ContractID = i.ContractID
	m.Amount = i.Amount
	m.DueDate = i.DueDate
	m.Status = i.Status
	m.Notes = i.Notes
	m.PaidAt = i.PaidAt
}

// InstallmentModelFromDomain creates a new persistence model from a domain Installment
func InstallmentModelFromDomain(i *sales.Installment) *InstallmentModel {
	m := &InstallmentModel{}
	m.FromDomain(i)
	return m
}
