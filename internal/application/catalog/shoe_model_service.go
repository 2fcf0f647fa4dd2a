package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/catalog"
	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/shared"
)

// ShoeModelService handles shoe model business operations
type ShoeModelService struct {
	modelRepo catalog.ShoeModelRepository
	brandRepo catalog.BrandRepository
	batchRepo inventory.IntakeBatchRepository
}

// NewShoeModelService creates a new ShoeModelService
func NewShoeModelService(
	modelRepo catalog.ShoeModelRepository,
	brandRepo catalog.BrandRepository,
	batchRepo inventory.IntakeBatchRepository,
) *ShoeModelService {
	return &ShoeModelService{
		modelRepo: modelRepo,
		brandRepo: brandRepo,
		batchRepo: batchRepo,
	}
}

// Create creates a new shoe model under an existing brand
func (s *ShoeModelService) Create(ctx context.Context, req CreateShoeModelRequest) (*ShoeModelResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, req.BrandID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_BRAND", "Brand not found")
		}
		return nil, err
	}

	model, err := catalog.NewShoeModel(brand.ID, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.modelRepo.Save(ctx, model); err != nil {
		return nil, err
	}

	model.Brand = brand
	resp := ToShoeModelResponse(model)
	return &resp, nil
}

// GetByID retrieves a shoe model by ID
func (s *ShoeModelService) GetByID(ctx context.Context, id uuid.UUID) (*ShoeModelResponse, error) {
	model, err := s.modelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToShoeModelResponse(model)
	return &resp, nil
}

// List retrieves all shoe models, optionally scoped to a brand
func (s *ShoeModelService) List(ctx context.Context, brandID *uuid.UUID) ([]ShoeModelResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	var models []catalog.ShoeModel
	var err error
	if brandID != nil {
		models, err = s.modelRepo.FindByBrand(ctx, *brandID, filter)
	} else {
		models, err = s.modelRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]ShoeModelResponse, len(models))
	for i := range models {
		responses[i] = ToShoeModelResponse(&models[i])
	}

	return responses, nil
}

// Rename renames a shoe model
func (s *ShoeModelService) Rename(ctx context.Context, id uuid.UUID, req UpdateShoeModelRequest) (*ShoeModelResponse, error) {
	model, err := s.modelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := model.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.modelRepo.Save(ctx, model); err != nil {
		return nil, err
	}

	resp := ToShoeModelResponse(model)
	return &resp, nil
}

// Delete deletes a shoe model. A model that still has intake batches
// cannot be deleted.
func (s *ShoeModelService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.modelRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.batchRepo.CountByModel(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CONFLICT", "Shoe model has intake batches and cannot be deleted")
	}

	return s.modelRepo.Delete(ctx, id)
}
