package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/catalog"
	"github.com/zapateria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormShoeModelRepository implements ShoeModelRepository using GORM
type GormShoeModelRepository struct {
	db *gorm.DB
}

// NewGormShoeModelRepository creates a new GormShoeModelRepository
func NewGormShoeModelRepository(db *gorm.DB) *GormShoeModelRepository {
	return &GormShoeModelRepository{db: db}
}

// FindByID finds a shoe model by its ID, brand included
func (r *GormShoeModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ShoeModel, error) {
	var model catalog.ShoeModel
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &model, nil
}

// FindAll finds all shoe models with their brands
func (r *GormShoeModelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ShoeModel, error) {
	var models []catalog.ShoeModel
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.ShoeModel{}), filter)

	if err := query.Preload("Brand").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// FindByBrand finds the shoe models of a brand
func (r *GormShoeModelRepository) FindByBrand(ctx context.Context, brandID uuid.UUID, filter shared.Filter) ([]catalog.ShoeModel, error) {
	var models []catalog.ShoeModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&catalog.ShoeModel{}).Where("brand_id = ?", brandID),
		filter,
	)

	if err := query.Preload("Brand").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// Save creates or updates a shoe model
func (r *GormShoeModelRepository) Save(ctx context.Context, model *catalog.ShoeModel) error {
	return r.db.WithContext(ctx).Omit("Brand").Save(model).Error
}

// Delete deletes a shoe model
func (r *GormShoeModelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&catalog.ShoeModel{}, "id = ?", id).Error
}
