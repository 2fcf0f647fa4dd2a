package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zapateria/backend/internal/domain/shared"
)

// PaymentStatus represents the stored payment state of a unit
type PaymentStatus string

const (
	// PaymentStatusUnpaid means no sale is recorded against the unit
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	// PaymentStatusPartial means a sale is recorded and payments are accumulating
	PaymentStatusPartial PaymentStatus = "partial"
	// PaymentStatusComplete is accepted on input but never persisted: a
	// completed sale is normalized to Partial with accumulated = target.
	// Display status is derived by comparing accumulated to target.
	PaymentStatusComplete PaymentStatus = "complete"
)

// IsValid returns true if the payment status is a known value
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusComplete:
		return true
	}
	return false
}

// MaxAccumulatedAmount bounds |accumulated| on any payment update
var MaxAccumulatedAmount = decimal.NewFromInt(99_999_999)

// Unit represents one physical, sellable pair of a given size at a given
// warehouse. It is the aggregate root of the payment ledger: it carries the
// running payment total, the portion already locked into withdrawals, and
// the sale state.
type Unit struct {
	shared.BaseEntity
	IntakeBatchID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Size          int           `gorm:"not null"`
	WarehouseID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	Available     bool          `gorm:"not null;default:true"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'unpaid'"`
	Buyer         *string       `gorm:"type:varchar(200)"`
	IsReversal    bool          `gorm:"not null;default:false"`

	// TargetAmount is the agreed total sale price; unset while unsold
	TargetAmount decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	// AccumulatedAmount is the running total of payments received. It is
	// negative on reversal units, which offset already-withdrawn funds.
	AccumulatedAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	// WithdrawnAmount is the portion of AccumulatedAmount already locked
	// into a withdrawal entry
	WithdrawnAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	// PaymentIncrement is the increment recorded by the latest update; a
	// subsequent update replaces it rather than adding to history
	PaymentIncrement decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	SaleDate   *time.Time
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Unit) TableName() string {
	return "units"
}

// NewUnit creates a fresh, unsold unit for an intake batch
func NewUnit(batchID uuid.UUID, size int, warehouseID uuid.UUID) (*Unit, error) {
	if batchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BATCH", "Intake batch reference is required")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse reference is required")
	}
	if size <= 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size must be positive")
	}

	return &Unit{
		BaseEntity:    shared.NewBaseEntity(),
		IntakeBatchID: batchID,
		Size:          size,
		WarehouseID:   warehouseID,
		Available:     true,
		PaymentStatus: PaymentStatusUnpaid,
	}, nil
}

// PaymentUpdate carries the fields of a sale/payment update request
type PaymentUpdate struct {
	Status           PaymentStatus
	WarehouseID      *uuid.UUID
	Buyer            *string
	TargetAmount     decimal.NullDecimal
	PaymentIncrement decimal.Decimal
	SaleDate         *time.Time
	CustomerID       *uuid.UUID
}

// ApplyPaymentUpdate runs the payment state machine on the unit.
//
// The requested increment is folded into the running total as a delta
// against the previously recorded increment: an update replaces "this
// update's increment", not the whole history. A requested Complete with a
// target is normalized to Partial with accumulated = target; the stored
// status never stands as terminal Complete. Transitioning back to Unpaid
// resets the accumulated total and marks the unit available again, but
// leaves WithdrawnAmount untouched (matching the legacy system; undoing a
// withdrawn sale goes through Refund instead).
//
// On error the unit is left unmodified.
func (u *Unit) ApplyPaymentUpdate(update PaymentUpdate) error {
	if !update.Status.IsValid() {
		return shared.NewDomainError("VALIDATION", "Unknown payment status")
	}
	if update.Status != PaymentStatusUnpaid && update.CustomerID == nil {
		return shared.NewDomainError("VALIDATION", "A customer is required for a paid or partially paid sale")
	}

	// Fold the requested increment into the running total
	accumulated := u.AccumulatedAmount
	if !update.PaymentIncrement.Equal(u.PaymentIncrement) {
		accumulated = accumulated.Add(update.PaymentIncrement.Sub(u.PaymentIncrement))
	}

	status := update.Status
	increment := update.PaymentIncrement
	available := u.Available

	switch {
	case status == PaymentStatusComplete && update.TargetAmount.Valid:
		status = PaymentStatusPartial
		increment = decimal.Zero
		accumulated = update.TargetAmount.Decimal
		available = false
	case status == PaymentStatusPartial:
		increment = decimal.Zero
		available = false
	case status == PaymentStatusUnpaid:
		accumulated = decimal.Zero
		available = true
	}

	if accumulated.Abs().GreaterThan(MaxAccumulatedAmount) {
		return shared.NewDomainError("VALIDATION", "Amount exceeds the allowed limit")
	}

	if update.WarehouseID != nil {
		u.WarehouseID = *update.WarehouseID
	}
	u.PaymentStatus = status
	u.Available = available
	u.Buyer = update.Buyer
	u.TargetAmount = update.TargetAmount
	u.AccumulatedAmount = accumulated
	u.PaymentIncrement = increment
	u.SaleDate = update.SaleDate
	u.CustomerID = update.CustomerID
	u.Touch()

	return nil
}

// AvailableFunds returns accumulated minus withdrawn. Negative on reversal
// units whose offset has not been withdrawn yet.
func (u *Unit) AvailableFunds() decimal.Decimal {
	return u.AccumulatedAmount.Sub(u.WithdrawnAmount)
}

// HasAvailableFunds reports whether the unit is eligible for settlement
func (u *Unit) HasAvailableFunds() bool {
	return !u.AvailableFunds().IsZero()
}

// MarkWithdrawn locks the full current accumulated balance into a
// withdrawal, leaving zero available funds
func (u *Unit) MarkWithdrawn() {
	u.WithdrawnAmount = u.AccumulatedAmount
	u.Touch()
}

// ResetPristine returns the unit to its initial unsold state: available,
// unpaid, all sale and payment fields cleared
func (u *Unit) ResetPristine() {
	u.Available = true
	u.PaymentStatus = PaymentStatusUnpaid
	u.Buyer = nil
	u.IsReversal = false
	u.TargetAmount = decimal.NullDecimal{}
	u.AccumulatedAmount = decimal.Zero
	u.WithdrawnAmount = decimal.Zero
	u.PaymentIncrement = decimal.Zero
	u.SaleDate = nil
	u.CustomerID = nil
	u.Touch()
}

// NewReversalUnit creates the negative correcting entry for a refund whose
// funds were already withdrawn. The new unit carries the negated
// accumulated amount with nothing withdrawn, so future settlements net the
// refunded cash back out of the pool without touching past withdrawal
// entries.
func NewReversalUnit(original *Unit) *Unit {
	now := time.Now()
	negated := original.AccumulatedAmount.Neg()

	return &Unit{
		BaseEntity:        shared.NewBaseEntity(),
		IntakeBatchID:     original.IntakeBatchID,
		Size:              original.Size,
		WarehouseID:       original.WarehouseID,
		Available:         false,
		PaymentStatus:     PaymentStatusPartial,
		Buyer:             original.Buyer,
		IsReversal:        true,
		TargetAmount:      decimal.NullDecimal{Decimal: negated, Valid: true},
		AccumulatedAmount: negated,
		WithdrawnAmount:   decimal.Zero,
		PaymentIncrement:  decimal.Zero,
		SaleDate:          &now,
		CustomerID:        original.CustomerID,
	}
}

// DisplayStatus derives the user-facing payment status: Complete when the
// accumulated total has met a positive target, the stored status otherwise
func (u *Unit) DisplayStatus() PaymentStatus {
	if u.TargetAmount.Valid && u.TargetAmount.Decimal.IsPositive() &&
		u.AccumulatedAmount.GreaterThanOrEqual(u.TargetAmount.Decimal) {
		return PaymentStatusComplete
	}
	return u.PaymentStatus
}

// IsOutstandingDebt reports whether the unit represents a tracked debt: a
// partially paid sale with a named buyer and an unmet target
func (u *Unit) IsOutstandingDebt() bool {
	return u.PaymentStatus == PaymentStatusPartial &&
		u.Buyer != nil && *u.Buyer != "" &&
		u.TargetAmount.Valid &&
		u.TargetAmount.Decimal.GreaterThan(u.AccumulatedAmount)
}
