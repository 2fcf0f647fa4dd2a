package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/finance"
	"github.com/zapateria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormWithdrawalRepository implements WithdrawalRepository using GORM
type GormWithdrawalRepository struct {
	db *gorm.DB
}

// NewGormWithdrawalRepository creates a new GormWithdrawalRepository
func NewGormWithdrawalRepository(db *gorm.DB) *GormWithdrawalRepository {
	return &GormWithdrawalRepository{db: db}
}

// FindByID finds a withdrawal by its ID, items included
func (r *GormWithdrawalRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Withdrawal, error) {
	var withdrawal finance.Withdrawal
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&withdrawal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &withdrawal, nil
}

// FindAll returns all withdrawals with their items, newest first
func (r *GormWithdrawalRepository) FindAll(ctx context.Context) ([]finance.Withdrawal, error) {
	var withdrawals []finance.Withdrawal
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("withdrawn_at DESC").
		Find(&withdrawals).Error; err != nil {
		return nil, err
	}
	return withdrawals, nil
}

// Save persists a new withdrawal along with its items
func (r *GormWithdrawalRepository) Save(ctx context.Context, withdrawal *finance.Withdrawal) error {
	return r.db.WithContext(ctx).Create(withdrawal).Error
}
