package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zapateria/backend/internal/domain/inventory"
)

// SizeCountInput is one size line of an intake request
type SizeCountInput struct {
	Size     int `json:"size" binding:"required,gt=0"`
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// CreateIntakeRequest represents a request to register a stock arrival.
// Each size line expands into quantity units.
type CreateIntakeRequest struct {
	ShoeModelID uuid.UUID        `json:"shoe_model_id" binding:"required"`
	IntakeDate  *time.Time       `json:"intake_date"`
	SizeCounts  []SizeCountInput `json:"size_counts" binding:"required,min=1,dive"`
	WarehouseID *uuid.UUID       `json:"warehouse_id"`
}

// ExpandSizes flattens the size lines into one entry per unit
func (r CreateIntakeRequest) ExpandSizes() []int {
	var sizes []int
	for _, sc := range r.SizeCounts {
		for i := 0; i < sc.Quantity; i++ {
			sizes = append(sizes, sc.Size)
		}
	}
	return sizes
}

// UpdateUnitPaymentRequest represents a sale/payment update on a unit
type UpdateUnitPaymentRequest struct {
	Status           string           `json:"status" binding:"required,oneof=unpaid partial complete"`
	WarehouseID      *uuid.UUID       `json:"warehouse_id"`
	Buyer            *string          `json:"buyer" binding:"omitempty,max=200"`
	TargetAmount     *decimal.Decimal `json:"target_amount"`
	PaymentIncrement decimal.Decimal  `json:"payment_increment"`
	SaleDate         *time.Time       `json:"sale_date"`
	CustomerID       *uuid.UUID       `json:"customer_id"`
}

// UnitResponse represents a unit in API responses. PaymentStatus is the
// derived display status; StoredStatus is what the ledger actually holds.
type UnitResponse struct {
	ID                uuid.UUID        `json:"id"`
	IntakeBatchID     uuid.UUID        `json:"intake_batch_id"`
	Size              int              `json:"size"`
	WarehouseID       uuid.UUID        `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name,omitempty"`
	Available         bool             `json:"available"`
	PaymentStatus     string           `json:"payment_status"`
	StoredStatus      string           `json:"stored_status"`
	Buyer             *string          `json:"buyer"`
	IsReversal        bool             `json:"is_reversal"`
	TargetAmount      *decimal.Decimal `json:"target_amount"`
	AccumulatedAmount decimal.Decimal  `json:"accumulated_amount"`
	WithdrawnAmount   decimal.Decimal  `json:"withdrawn_amount"`
	AvailableFunds    decimal.Decimal  `json:"available_funds"`
	SaleDate          *time.Time       `json:"sale_date"`
	CustomerID        *uuid.UUID       `json:"customer_id"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// RefundResponse reports the outcome of a refund
type RefundResponse struct {
	Unit           UnitResponse    `json:"unit"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
	WasWithdrawn   bool            `json:"was_withdrawn"`
}

// IntakeBatchResponse represents an intake batch with its units
type IntakeBatchResponse struct {
	ID          uuid.UUID      `json:"id"`
	ShoeModelID uuid.UUID      `json:"shoe_model_id"`
	IntakeDate  time.Time      `json:"intake_date"`
	Units       []UnitResponse `json:"units"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ToUnitResponse converts a domain Unit to UnitResponse
func ToUnitResponse(u *inventory.Unit) UnitResponse {
	resp := UnitResponse{
		ID:                u.ID,
		IntakeBatchID:     u.IntakeBatchID,
		Size:              u.Size,
		WarehouseID:       u.WarehouseID,
		Available:         u.Available,
		PaymentStatus:     string(u.DisplayStatus()),
		StoredStatus:      string(u.PaymentStatus),
		Buyer:             u.Buyer,
		IsReversal:        u.IsReversal,
		AccumulatedAmount: u.AccumulatedAmount,
		WithdrawnAmount:   u.WithdrawnAmount,
		AvailableFunds:    u.AvailableFunds(),
		SaleDate:          u.SaleDate,
		CustomerID:        u.CustomerID,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
	if u.TargetAmount.Valid {
		target := u.TargetAmount.Decimal
		resp.TargetAmount = &target
	}
	return resp
}

// ToIntakeBatchResponse converts a domain IntakeBatch to IntakeBatchResponse
func ToIntakeBatchResponse(b *inventory.IntakeBatch) *IntakeBatchResponse {
	resp := &IntakeBatchResponse{
		ID:          b.ID,
		ShoeModelID: b.ShoeModelID,
		IntakeDate:  b.IntakeDate,
		Units:       make([]UnitResponse, 0, len(b.Units)),
		CreatedAt:   b.CreatedAt,
	}
	for i := range b.Units {
		resp.Units = append(resp.Units, ToUnitResponse(&b.Units[i]))
	}
	return resp
}
