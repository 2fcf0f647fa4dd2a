package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormIntakeBatchRepository implements IntakeBatchRepository using GORM
type GormIntakeBatchRepository struct {
	db *gorm.DB
}

// NewGormIntakeBatchRepository creates a new GormIntakeBatchRepository
func NewGormIntakeBatchRepository(db *gorm.DB) *GormIntakeBatchRepository {
	return &GormIntakeBatchRepository{db: db}
}

// FindByID finds a batch by its ID, units included
func (r *GormIntakeBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.IntakeBatch, error) {
	var batch inventory.IntakeBatch
	if err := r.db.WithContext(ctx).
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("size ASC")
		}).
		First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindByModel finds the batches of a shoe model, newest intake first
func (r *GormIntakeBatchRepository) FindByModel(ctx context.Context, modelID uuid.UUID) ([]inventory.IntakeBatch, error) {
	var batches []inventory.IntakeBatch
	if err := r.db.WithContext(ctx).
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("size ASC")
		}).
		Where("shoe_model_id = ?", modelID).
		Order("intake_date DESC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// CountByModel counts the batches registered for a shoe model
func (r *GormIntakeBatchRepository) CountByModel(ctx context.Context, modelID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.IntakeBatch{}).
		Where("shoe_model_id = ?", modelID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a batch along with its units
func (r *GormIntakeBatchRepository) Save(ctx context.Context, batch *inventory.IntakeBatch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// Delete deletes a batch and all of its units
func (r *GormIntakeBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&inventory.Unit{}, "intake_batch_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&inventory.IntakeBatch{}, "id = ?", id).Error
	})
}
