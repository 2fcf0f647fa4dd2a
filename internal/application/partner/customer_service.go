package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/partner"
	"github.com/zapateria/backend/internal/domain/shared"
)

// CustomerService handles customer business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// GetByID retrieves a customer by ID with their purchased unit count
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	count, err := s.customerRepo.CountUnits(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.PurchasedUnits = count

	return resp, nil
}

// List retrieves all customers with their purchased unit counts
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *ToCustomerResponse(&customers[i])
		count, err := s.customerRepo.CountUnits(ctx, customers[i].ID)
		if err != nil {
			return nil, err
		}
		responses[i].PurchasedUnits = count
	}

	return responses, nil
}

// Update updates a customer's basic information
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.Name, req.Phone, req.Email); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// Delete deletes a customer. A customer referenced by any unit cannot be
// deleted; the sale history must keep pointing at a real person.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.customerRepo.CountUnits(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CONFLICT", "Customer has linked sales and cannot be deleted")
	}

	return s.customerRepo.Delete(ctx, id)
}
