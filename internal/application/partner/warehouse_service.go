package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/partner"
	"github.com/zapateria/backend/internal/domain/shared"
)

// WarehouseService handles warehouse business operations
type WarehouseService struct {
	warehouseRepo partner.WarehouseRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo partner.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouseRepo: warehouseRepo}
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := partner.NewWarehouse(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	return ToWarehouseResponse(warehouse), nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToWarehouseResponse(warehouse), nil
}

// List retrieves all warehouses
func (s *WarehouseService) List(ctx context.Context) ([]WarehouseResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	warehouses, err := s.warehouseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		responses[i] = *ToWarehouseResponse(&warehouses[i])
	}

	return responses, nil
}

// Rename renames a warehouse
func (s *WarehouseService) Rename(ctx context.Context, id uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := warehouse.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	return ToWarehouseResponse(warehouse), nil
}

// Delete deletes a warehouse. Units keep their warehouse reference; the
// legacy system never guarded this and stock screens tolerate a missing
// location.
func (s *WarehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.warehouseRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.warehouseRepo.Delete(ctx, id)
}
