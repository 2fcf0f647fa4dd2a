package finance

import (
	"context"

	"github.com/google/uuid"
)

// WithdrawalRepository defines the interface for withdrawal persistence.
// Withdrawals are append-only: there is no update or delete.
type WithdrawalRepository interface {
	// FindByID finds a withdrawal by its ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Withdrawal, error)

	// FindAll returns all withdrawals with their items, newest first
	FindAll(ctx context.Context) ([]Withdrawal, error)

	// Save persists a new withdrawal along with its items
	Save(ctx context.Context, withdrawal *Withdrawal) error
}
