package partner

import (
	"strings"

	"github.com/zapateria/backend/internal/domain/shared"
)

// Customer represents a buyer that units can be sold to on credit.
// Sales entering Partial or Complete payment status must reference a
// customer so outstanding debts can be traced back to a person.
type Customer struct {
	shared.BaseEntity
	Name  string `gorm:"type:varchar(200);not null"`
	Phone string `gorm:"type:varchar(50)"`
	Email string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(name, phone, email string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if err := validateCustomerContact(phone, email); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		Email:      strings.TrimSpace(email),
	}, nil
}

// Update updates the customer's basic information
func (c *Customer) Update(name, phone, email string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}
	if err := validateCustomerContact(phone, email); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
	c.Touch()
	return nil
}

func validateCustomerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validateCustomerContact(phone, email string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Email must contain @")
	}
	return nil
}
