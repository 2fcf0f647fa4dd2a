package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/shared"
)

// WarehouseRepository defines the interface for warehouse persistence
type WarehouseRepository interface {
	// FindByID finds a warehouse by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)

	// FindFirst returns any existing warehouse, or ErrNotFound when the
	// table is empty. Used by intake to pick the default location.
	FindFirst(ctx context.Context) (*Warehouse, error)

	// FindAll finds all warehouses
	FindAll(ctx context.Context, filter shared.Filter) ([]Warehouse, error)

	// Save creates or updates a warehouse
	Save(ctx context.Context, warehouse *Warehouse) error

	// Delete deletes a warehouse
	Delete(ctx context.Context, id uuid.UUID) error
}
