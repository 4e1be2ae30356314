package partner

import (
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer is a buyer reference entity. Deletion is blocked while contracts
// reference the customer.
type Customer struct {
	shared.TenantAggregateRoot
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	NationalID string `json:"national_id,omitempty"`
	Address    string `json:"address,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// NewCustomer creates a new customer
func NewCustomer(tenantID uuid.UUID, name, phone string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "اسم العميل مطلوب")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "اسم العميل طويل جداً")
	}
	return &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Phone:               phone,
	}, nil
}

// Update changes the customer's descriptive fields
func (c *Customer) Update(name, phone, nationalID, address, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "اسم العميل مطلوب")
	}
	c.Name = name
	c.Phone = phone
	c.NationalID = nationalID
	c.Address = address
	c.Notes = notes
	c.IncrementVersion()
	return nil
}
