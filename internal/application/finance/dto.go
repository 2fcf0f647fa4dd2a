package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zapateria/backend/internal/domain/finance"
)

// SettleRequest represents a request to withdraw the available funds of a
// set of units. Unknown unit IDs are ignored; units with no available
// funds are skipped.
type SettleRequest struct {
	UnitIDs     []uuid.UUID `json:"unit_ids" binding:"required,min=1"`
	WithdrawnAt *time.Time  `json:"withdrawn_at"`
}

// FundsEntry represents the withdrawable money of one sold unit
type FundsEntry struct {
	UnitID        uuid.UUID       `json:"unit_id"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Size          int             `json:"size"`
	Buyer         *string         `json:"buyer"`
	IsReversal    bool            `json:"is_reversal"`
	PaymentStatus string          `json:"payment_status"`
	Amount        decimal.Decimal `json:"amount"`
	SaleDate      *time.Time      `json:"sale_date"`
}

// AvailableFundsResponse lists withdrawable money per unit with the grand total
type AvailableFundsResponse struct {
	Entries []FundsEntry    `json:"entries"`
	Total   decimal.Decimal `json:"total"`
}

// DebtEntry represents one partially paid sale with money still owed
type DebtEntry struct {
	UnitID      uuid.UUID       `json:"unit_id"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Size        int             `json:"size"`
	Buyer       string          `json:"buyer"`
	CustomerID  *uuid.UUID      `json:"customer_id"`
	Target      decimal.Decimal `json:"target"`
	Accumulated decimal.Decimal `json:"accumulated"`
	Remaining   decimal.Decimal `json:"remaining"`
	SaleDate    *time.Time      `json:"sale_date"`
}

// WithdrawalItemResponse represents one line of a withdrawal
type WithdrawalItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	UnitID      uuid.UUID       `json:"unit_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// WithdrawalResponse represents a withdrawal in API responses
type WithdrawalResponse struct {
	ID          uuid.UUID                `json:"id"`
	WithdrawnAt time.Time                `json:"withdrawn_at"`
	TotalAmount decimal.Decimal          `json:"total_amount"`
	Items       []WithdrawalItemResponse `json:"items"`
	CreatedAt   time.Time                `json:"created_at"`
}

// ToWithdrawalResponse converts a domain Withdrawal to WithdrawalResponse
func ToWithdrawalResponse(w *finance.Withdrawal) *WithdrawalResponse {
	resp := &WithdrawalResponse{
		ID:          w.ID,
		WithdrawnAt: w.WithdrawnAt,
		TotalAmount: w.TotalAmount,
		Items:       make([]WithdrawalItemResponse, 0, len(w.Items)),
		CreatedAt:   w.CreatedAt,
	}
	for _, item := range w.Items {
		resp.Items = append(resp.Items, WithdrawalItemResponse{
			ID:          item.ID,
			UnitID:      item.UnitID,
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
	return resp
}
