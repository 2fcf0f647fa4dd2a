package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/shared"
)

// BrandRepository defines the interface for brand persistence
type BrandRepository interface {
	// FindByID finds a brand by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Brand, error)

	// FindAll finds all brands with their models preloaded
	FindAll(ctx context.Context, filter shared.Filter) ([]Brand, error)

	// ExistsByName checks if a brand with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save creates or updates a brand
	Save(ctx context.Context, brand *Brand) error

	// Delete deletes a brand
	Delete(ctx context.Context, id uuid.UUID) error

	// CountModels counts the models registered under a brand
	CountModels(ctx context.Context, brandID uuid.UUID) (int64, error)
}
