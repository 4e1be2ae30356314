package partner

import (
	"context"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService provides application-level customer operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	contractRepo sales.ContractRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, contractRepo sales.ContractRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		contractRepo: contractRepo,
	}
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, tenantID uuid.UUID, req CustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(tenantID, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	customer.NationalID = req.NationalID
	customer.Address = req.Address
	customer.Notes = req.Notes

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetCustomer gets a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, tenantID, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "العميل غير موجود")
	}
	return toCustomerResponse(customer), nil
}

// ListCustomers lists customers with filtering
func (s *CustomerService) ListCustomers(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]CustomerResponse, int64, error) {
	domainFilter := filter.toDomain()
	customers, err := s.customerRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *toCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// UpdateCustomer updates a customer's fields
func (s *CustomerService) UpdateCustomer(ctx context.Context, tenantID, id uuid.UUID, req CustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "العميل غير موجود")
	}

	if err := customer.Update(req.Name, req.Phone, req.NationalID, req.Address, req.Notes); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// DeleteCustomer soft deletes a customer. Blocked while contracts reference
// the customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, tenantID, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return shared.NewDomainError("NOT_FOUND", "العميل غير موجود")
	}

	contractCount, err := s.contractRepo.CountByCustomer(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if contractCount > 0 {
		return shared.NewDomainError("HAS_REFERENCES", "لا يمكن حذف عميل مرتبط بعقود")
	}

	return s.customerRepo.Delete(ctx, tenantID, id)
}
