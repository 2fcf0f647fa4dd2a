package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormUnitRepository implements UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by its ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Unit, error) {
	var unit inventory.Unit
	if err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// FindByIDs finds the units matching the given IDs. IDs with no matching
// row are simply absent from the result.
func (r *GormUnitRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Unit, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var units []inventory.Unit
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// FindAll finds all units matching the filter
func (r *GormUnitRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Unit, error) {
	var units []inventory.Unit
	query := applyFilter(r.db.WithContext(ctx).Model(&inventory.Unit{}), filter)

	if err := query.Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// FindSold finds the units with a recorded sale, newest sale first
func (r *GormUnitRepository) FindSold(ctx context.Context) ([]inventory.Unit, error) {
	var units []inventory.Unit
	if err := r.db.WithContext(ctx).
		Where("payment_status <> ?", inventory.PaymentStatusUnpaid).
		Order("sale_date DESC").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// FindAvailableByModel finds the available units of a shoe model
func (r *GormUnitRepository) FindAvailableByModel(ctx context.Context, modelID uuid.UUID) ([]inventory.Unit, error) {
	var units []inventory.Unit
	if err := r.db.WithContext(ctx).
		Joins("JOIN intake_batches ON intake_batches.id = units.intake_batch_id").
		Where("intake_batches.shoe_model_id = ? AND units.available", modelID).
		Order("units.size ASC").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *inventory.Unit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

// Delete deletes a unit
func (r *GormUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&inventory.Unit{}, "id = ?", id).Error
}
