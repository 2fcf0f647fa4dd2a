package finance

import (
	"context"

	"github.com/zapateria/backend/internal/domain/finance"
	"github.com/zapateria/backend/internal/domain/inventory"
)

// TransactionScope provides transactional boundaries for settlement:
// marking units withdrawn and writing the withdrawal record must commit
// together or not at all
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories a
// settlement touches within one transaction
type TransactionalRepositories struct {
	Units       inventory.UnitRepository
	Withdrawals finance.WithdrawalRepository
}
