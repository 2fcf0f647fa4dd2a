package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zapateria/backend/internal/domain/shared"
)

// Withdrawal is an immutable historical record of one cash settlement: the
// moment the owner takes the available funds of a set of sold units out of
// the business. Entries are never edited or deleted once written.
type Withdrawal struct {
	shared.BaseEntity
	WithdrawnAt time.Time        `gorm:"not null"`
	TotalAmount decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Items       []WithdrawalItem `gorm:"foreignKey:WithdrawalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Withdrawal) TableName() string {
	return "withdrawals"
}

// WithdrawalItem is one line of a withdrawal: the funds taken from a single
// unit, with a human-readable description frozen at settlement time
type WithdrawalItem struct {
	shared.BaseEntity
	WithdrawalID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID       uuid.UUID       `gorm:"type:uuid;not null"`
	Description  string          `gorm:"type:varchar(500);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName returns the table name for GORM
func (WithdrawalItem) TableName() string {
	return "withdrawal_items"
}

// ItemInput describes one unit being settled
type ItemInput struct {
	UnitID      uuid.UUID
	Description string
	Amount      decimal.Decimal
}

// NewWithdrawal creates a withdrawal from the given items. The total is the
// sum of the item amounts; it can be lowered by negative reversal items but
// the items themselves are recorded as-is.
func NewWithdrawal(withdrawnAt time.Time, items []ItemInput) (*Withdrawal, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_WITHDRAWAL", "A withdrawal needs at least one item")
	}
	if withdrawnAt.IsZero() {
		withdrawnAt = time.Now()
	}

	w := &Withdrawal{
		BaseEntity:  shared.NewBaseEntity(),
		WithdrawnAt: withdrawnAt,
		TotalAmount: decimal.Zero,
	}

	for _, item := range items {
		if item.UnitID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_ITEM", "Withdrawal item needs a unit reference")
		}
		if item.Description == "" {
			return nil, shared.NewDomainError("INVALID_ITEM", "Withdrawal item needs a description")
		}
		w.Items = append(w.Items, WithdrawalItem{
			BaseEntity:   shared.NewBaseEntity(),
			WithdrawalID: w.ID,
			UnitID:       item.UnitID,
			Description:  item.Description,
			Amount:       item.Amount,
		})
		w.TotalAmount = w.TotalAmount.Add(item.Amount)
	}

	return w, nil
}

// DetailLine renders the frozen description for one settled unit:
// "{brand} - {model} (Talle {size})" with the buyer appended when known,
// then the signed amount with two decimals.
func DetailLine(brand, model string, size int, buyer *string, amount decimal.Decimal) string {
	line := fmt.Sprintf("%s - %s (Talle %d)", brand, model, size)
	if buyer != nil && *buyer != "" {
		line += " - " + *buyer
	}
	if amount.IsNegative() {
		return fmt.Sprintf("%s: -$%s", line, amount.Abs().StringFixed(2))
	}
	return fmt.Sprintf("%s: $%s", line, amount.StringFixed(2))
}
