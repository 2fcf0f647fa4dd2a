package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/shared"
)

// ShoeModelRepository defines the interface for shoe model persistence
type ShoeModelRepository interface {
	// FindByID finds a model by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ShoeModel, error)

	// FindAll finds all models with their brand preloaded
	FindAll(ctx context.Context, filter shared.Filter) ([]ShoeModel, error)

	// FindByBrand finds all models for a brand
	FindByBrand(ctx context.Context, brandID uuid.UUID, filter shared.Filter) ([]ShoeModel, error)

	// Save creates or updates a model
	Save(ctx context.Context, model *ShoeModel) error

	// Delete deletes a model
	Delete(ctx context.Context, id uuid.UUID) error
}
