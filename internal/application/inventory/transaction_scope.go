package inventory

import (
	"context"

	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/partner"
)

// TransactionScope provides transactional boundaries for multi-step
// inventory operations (intake with warehouse bootstrap, refunds)
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories an
// inventory operation touches within one transaction. All repositories
// share the same underlying database transaction.
type TransactionalRepositories struct {
	Units      inventory.UnitRepository
	Batches    inventory.IntakeBatchRepository
	Warehouses partner.WarehouseRepository
}
