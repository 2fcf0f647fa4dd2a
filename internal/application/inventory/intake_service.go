package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/catalog"
	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/partner"
	"github.com/zapateria/backend/internal/domain/shared"
)

// IntakeService handles stock arrival operations
type IntakeService struct {
	modelRepo     catalog.ShoeModelRepository
	batchRepo     inventory.IntakeBatchRepository
	warehouseRepo partner.WarehouseRepository
	txScope       TransactionScope
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(
	modelRepo catalog.ShoeModelRepository,
	batchRepo inventory.IntakeBatchRepository,
	warehouseRepo partner.WarehouseRepository,
	txScope TransactionScope,
) *IntakeService {
	return &IntakeService{
		modelRepo:     modelRepo,
		batchRepo:     batchRepo,
		warehouseRepo: warehouseRepo,
		txScope:       txScope,
	}
}

// fillWarehouseNames resolves warehouse names onto the batch's units.
// Units pointing at a deleted warehouse keep an empty name.
func (s *IntakeService) fillWarehouseNames(ctx context.Context, responses ...*IntakeBatchResponse) error {
	warehouses, err := s.warehouseRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return err
	}
	names := make(map[uuid.UUID]string, len(warehouses))
	for i := range warehouses {
		names[warehouses[i].ID] = warehouses[i].Name
	}

	for _, resp := range responses {
		for i := range resp.Units {
			resp.Units[i].WarehouseName = names[resp.Units[i].WarehouseID]
		}
	}
	return nil
}

// Create registers a stock arrival for a shoe model. When no warehouse is
// given the first registered warehouse is used; if none exists at all, a
// default one is created so intake never blocks on setup.
func (s *IntakeService) Create(ctx context.Context, req CreateIntakeRequest) (*IntakeBatchResponse, error) {
	if _, err := s.modelRepo.FindByID(ctx, req.ShoeModelID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_MODEL", "Shoe model not found")
		}
		return nil, err
	}

	intakeDate := time.Now()
	if req.IntakeDate != nil {
		intakeDate = *req.IntakeDate
	}

	var batch *inventory.IntakeBatch
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		warehouseID, err := s.resolveWarehouse(ctx, repos.Warehouses, req.WarehouseID)
		if err != nil {
			return err
		}

		batch, err = inventory.NewIntakeBatch(req.ShoeModelID, intakeDate, req.ExpandSizes(), warehouseID)
		if err != nil {
			return err
		}

		return repos.Batches.Save(ctx, batch)
	})
	if err != nil {
		return nil, err
	}

	return ToIntakeBatchResponse(batch), nil
}

func (s *IntakeService) resolveWarehouse(ctx context.Context, warehouses partner.WarehouseRepository, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil {
		warehouse, err := warehouses.FindByID(ctx, *requested)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return uuid.Nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse not found")
			}
			return uuid.Nil, err
		}
		return warehouse.ID, nil
	}

	warehouse, err := warehouses.FindFirst(ctx)
	if err == nil {
		return warehouse.ID, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return uuid.Nil, err
	}

	warehouse = partner.NewDefaultWarehouse()
	if err := warehouses.Save(ctx, warehouse); err != nil {
		return uuid.Nil, err
	}
	return warehouse.ID, nil
}

// GetByID retrieves a batch with its units
func (s *IntakeService) GetByID(ctx context.Context, id uuid.UUID) (*IntakeBatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToIntakeBatchResponse(batch)
	if err := s.fillWarehouseNames(ctx, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ListByModel retrieves the batches of a shoe model, newest intake first
func (s *IntakeService) ListByModel(ctx context.Context, modelID uuid.UUID) ([]IntakeBatchResponse, error) {
	if _, err := s.modelRepo.FindByID(ctx, modelID); err != nil {
		return nil, err
	}

	batches, err := s.batchRepo.FindByModel(ctx, modelID)
	if err != nil {
		return nil, err
	}

	responses := make([]IntakeBatchResponse, len(batches))
	refs := make([]*IntakeBatchResponse, len(batches))
	for i := range batches {
		responses[i] = *ToIntakeBatchResponse(&batches[i])
		refs[i] = &responses[i]
	}
	if err := s.fillWarehouseNames(ctx, refs...); err != nil {
		return nil, err
	}

	return responses, nil
}

// Delete deletes a batch and all of its units. No guard: removing an
// intake takes its pairs out of stock, sold or not.
func (s *IntakeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.batchRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.batchRepo.Delete(ctx, id)
}
