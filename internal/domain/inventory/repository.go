package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/shared"
)

// IntakeBatchRepository defines the interface for intake batch persistence
type IntakeBatchRepository interface {
	// FindByID finds a batch by its ID, units included
	FindByID(ctx context.Context, id uuid.UUID) (*IntakeBatch, error)

	// FindByModel finds all batches of a shoe model, units included,
	// newest intake first
	FindByModel(ctx context.Context, modelID uuid.UUID) ([]IntakeBatch, error)

	// CountByModel counts the batches registered for a shoe model
	CountByModel(ctx context.Context, modelID uuid.UUID) (int64, error)

	// Save creates or updates a batch along with its units
	Save(ctx context.Context, batch *IntakeBatch) error

	// Delete deletes a batch and all of its units
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitRepository defines the interface for unit persistence
type UnitRepository interface {
	// FindByID finds a unit by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)

	// FindByIDs finds the units matching the given IDs; unknown IDs are
	// silently omitted from the result
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Unit, error)

	// FindAll finds all units
	FindAll(ctx context.Context, filter shared.Filter) ([]Unit, error)

	// FindSold finds the units with a recorded sale (Partial or Complete
	// payment status), newest sale first
	FindSold(ctx context.Context) ([]Unit, error)

	// FindAvailableByModel finds the available units of a shoe model
	FindAvailableByModel(ctx context.Context, modelID uuid.UUID) ([]Unit, error)

	// Save creates or updates a unit
	Save(ctx context.Context, unit *Unit) error

	// Delete deletes a unit
	Delete(ctx context.Context, id uuid.UUID) error
}
