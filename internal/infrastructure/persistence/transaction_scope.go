package persistence

import (
	"context"

	appfinance "github.com/zapateria/backend/internal/application/finance"
	appinventory "github.com/zapateria/backend/internal/application/inventory"
	"gorm.io/gorm"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(appinventory.TransactionalRepositories{
			Units:      NewGormUnitRepository(tx),
			Batches:    NewGormIntakeBatchRepository(tx),
			Warehouses: NewGormWarehouseRepository(tx),
		})
	})
}

// GormFinanceTransactionScope implements the finance TransactionScope
// using GORM transactions
type GormFinanceTransactionScope struct {
	db *gorm.DB
}

// NewGormFinanceTransactionScope creates a new GormFinanceTransactionScope
func NewGormFinanceTransactionScope(db *gorm.DB) *GormFinanceTransactionScope {
	return &GormFinanceTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormFinanceTransactionScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(appfinance.TransactionalRepositories{
			Units:       NewGormUnitRepository(tx),
			Withdrawals: NewGormWithdrawalRepository(tx),
		})
	})
}

// Interface checks
var (
	_ appinventory.TransactionScope = (*GormInventoryTransactionScope)(nil)
	_ appfinance.TransactionScope   = (*GormFinanceTransactionScope)(nil)
)
