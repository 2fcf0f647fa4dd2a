package partner

import (
	"strings"

	"github.com/zapateria/backend/internal/domain/shared"
)

// DefaultWarehouseName is the name given to the warehouse created
// automatically when an intake batch is recorded and none exists yet.
const DefaultWarehouseName = "Principal"

// Warehouse represents a storage location ("depósito") for shoe units
type Warehouse struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse with the given name
func NewWarehouse(name string) (*Warehouse, error) {
	if err := validateWarehouseName(name); err != nil {
		return nil, err
	}

	return &Warehouse{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}, nil
}

// NewDefaultWarehouse creates the fallback warehouse used when intake
// is recorded before any warehouse has been registered
func NewDefaultWarehouse() *Warehouse {
	w, _ := NewWarehouse(DefaultWarehouseName)
	return w
}

// Rename updates the warehouse's name
func (w *Warehouse) Rename(name string) error {
	if err := validateWarehouseName(name); err != nil {
		return err
	}

	w.Name = strings.TrimSpace(name)
	w.Touch()
	return nil
}

func validateWarehouseName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot exceed 200 characters")
	}
	return nil
}
