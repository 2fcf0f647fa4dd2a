package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/catalog"
	"github.com/zapateria/backend/internal/domain/shared"
)

// BrandService handles brand-related business operations
type BrandService struct {
	brandRepo catalog.BrandRepository
}

// NewBrandService creates a new BrandService
func NewBrandService(brandRepo catalog.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

// Create creates a new brand
func (s *BrandService) Create(ctx context.Context, req CreateBrandRequest) (*BrandResponse, error) {
	exists, err := s.brandRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Brand with this name already exists")
	}

	brand, err := catalog.NewBrand(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.brandRepo.Save(ctx, brand); err != nil {
		return nil, err
	}

	return ToBrandResponse(brand), nil
}

// GetByID retrieves a brand by ID, models included
func (s *BrandService) GetByID(ctx context.Context, id uuid.UUID) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToBrandResponse(brand), nil
}

// List retrieves all brands with their models
func (s *BrandService) List(ctx context.Context) ([]BrandResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	brands, err := s.brandRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]BrandResponse, len(brands))
	for i := range brands {
		responses[i] = *ToBrandResponse(&brands[i])
	}

	return responses, nil
}

// Rename renames a brand
func (s *BrandService) Rename(ctx context.Context, id uuid.UUID, req UpdateBrandRequest) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if brand.Name != req.Name {
		exists, err := s.brandRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Brand with this name already exists")
		}
	}

	if err := brand.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.brandRepo.Save(ctx, brand); err != nil {
		return nil, err
	}

	return ToBrandResponse(brand), nil
}

// Delete deletes a brand. A brand that still has models cannot be deleted.
func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.brandRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.brandRepo.CountModels(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CONFLICT", "Brand has models and cannot be deleted")
	}

	return s.brandRepo.Delete(ctx, id)
}
