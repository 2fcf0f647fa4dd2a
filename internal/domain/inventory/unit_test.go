package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zapateria/backend/internal/domain/shared"
)

func newTestUnit(t *testing.T) *Unit {
	t.Helper()
	unit, err := NewUnit(uuid.New(), 42, uuid.New())
	require.NoError(t, err)
	return unit
}

func ptr[T any](v T) *T { return &v }

func TestNewUnit(t *testing.T) {
	t.Run("should create unit successfully", func(t *testing.T) {
		batchID := uuid.New()
		warehouseID := uuid.New()

		unit, err := NewUnit(batchID, 38, warehouseID)

		require.NoError(t, err)
		assert.Equal(t, batchID, unit.IntakeBatchID)
		assert.Equal(t, warehouseID, unit.WarehouseID)
		assert.Equal(t, 38, unit.Size)
		assert.True(t, unit.Available)
		assert.Equal(t, PaymentStatusUnpaid, unit.PaymentStatus)
		assert.False(t, unit.IsReversal)
		assert.True(t, unit.AccumulatedAmount.IsZero())
		assert.True(t, unit.WithdrawnAmount.IsZero())
	})

	t.Run("should fail with invalid size", func(t *testing.T) {
		_, err := NewUnit(uuid.New(), 0, uuid.New())

		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_SIZE", domainErr.Code)
	})

	t.Run("should fail without warehouse", func(t *testing.T) {
		_, err := NewUnit(uuid.New(), 40, uuid.Nil)

		assert.Error(t, err)
	})
}

func TestUnit_ApplyPaymentUpdate_IncrementFolding(t *testing.T) {
	t.Run("successive partial payments accumulate", func(t *testing.T) {
		unit := newTestUnit(t)
		customerID := uuid.New()

		err := unit.ApplyPaymentUpdate(PaymentUpdate{
			Status:           PaymentStatusPartial,
			Buyer:            ptr("Maria"),
			TargetAmount:     decimal.NewNullDecimal(decimal.NewFromInt(100)),
			PaymentIncrement: decimal.NewFromInt(40),
			CustomerID:       &customerID,
		})
		require.NoError(t, err)

		assert.Equal(t, PaymentStatusPartial, unit.PaymentStatus)
		assert.True(t, unit.AccumulatedAmount.Equal(decimal.NewFromInt(40)))
		// the recorded increment is folded in and cleared
		assert.True(t, unit.PaymentIncrement.IsZero())
		assert.False(t, unit.Available)

		err = unit.ApplyPaymentUpdate(PaymentUpdate{
			Status:           PaymentStatusPartial,
			Buyer:            ptr("Maria"),
			TargetAmount:     decimal.NewNullDecimal(decimal.NewFromInt(100)),
			PaymentIncrement: decimal.NewFromInt(60),
			CustomerID:       &customerID,
		})
		require.NoError(t, err)

		assert.True(t, unit.AccumulatedAmount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, PaymentStatusComplete, unit.DisplayStatus())
	})

	t.Run("unchanged increment does not accumulate again", func(t *testing.T) {
		unit := newTestUnit(t)
		customerID := uuid.New()
		unit.AccumulatedAmount = decimal.NewFromInt(40)
		unit.PaymentIncrement = decimal.NewFromInt(40)
		unit.PaymentStatus = PaymentStatusPartial

		err := unit.ApplyPaymentUpdate(PaymentUpdate{
			Status:           PaymentStatusPartial,
			TargetAmount:     decimal.NewNullDecimal(decimal.NewFromInt(100)),
			PaymentIncrement: decimal.NewFromInt(40),
			CustomerID:       &customerID,
		})
		require.NoError(t, err)

		assert.True(t, unit.AccumulatedAmount.Equal(decimal.NewFromInt(40)))
	})

	t.Run("lower increment corrects the total downward", func(t *testing.T) {
		unit := newTestUnit(t)
		customerID := uuid.New()
		unit.AccumulatedAmount = decimal.NewFromInt(40)
		unit.PaymentIncrement = decimal.NewFromInt(40)
		unit.PaymentStatus = PaymentStatusPartial

		err := unit.ApplyPaymentUpdate(PaymentUpdate{
			Status:           PaymentStatusPartial,
			TargetAmount:     decimal.NewNullDecimal(decimal.NewFromInt(100)),
			PaymentIncrement: decimal.NewFromInt(25),
			CustomerID:       &customerID,
		})
		require.NoError(t, err)

		assert.True(t, unit.AccumulatedAmount.Equal(decimal.NewFromInt(25)))
	})
}

func TestUnit_ApplyPaymentUpdate_CompleteNormalization(t *testing.T) {
	unit := newTestUnit(t)
	customerID := uuid.New()
	saleDate := time.Now()

	err := unit.ApplyPaymentUpdate(PaymentUpdate{
		Status:           PaymentStatusComplete,
		Buyer:            ptr("Jorge"),
		TargetAmount:     decimal.NewNullDecimal(decimal.NewFromInt(150)),
		PaymentIncrement: decimal.NewFromInt(150),
		SaleDate:         &saleDate,
		CustomerID:       &customerID,
	})
	require.NoError(t, err)

	// stored as Partial with the target fully accumulated
	assert.Equal(t, PaymentStatusPartial, unit.PaymentStatus)
	assert.True(t, unit.AccumulatedAmount.Equal(decimal.NewFromInt(150)))
	assert.True(t, unit.PaymentIncrement.IsZero())
	assert.False(t, unit.Available)
	assert.Equal(t, PaymentStatusComplete, unit.DisplayStatus())
}

func TestUnit_ApplyPaymentUpdate_UnpaidReset(t *testing.T) {
	unit := newTestUnit(t)
	unit.PaymentStatus = PaymentStatusPartial
	unit.Available = false
	unit.Buyer = ptr("Maria")
	unit.AccumulatedAmount = decimal.NewFromInt(80)
	unit.WithdrawnAmount = decimal.NewFromInt(50)

	err := unit.ApplyPaymentUpdate(PaymentUpdate{
		Status:           PaymentStatusUnpaid,
		PaymentIncrement: decimal.Zero,
	})
	require.NoError(t, err)

	assert.Equal(t, PaymentStatusUnpaid, unit.PaymentStatus)
	assert.True(t, unit.Available)
	assert.True(t, unit.AccumulatedAmount.IsZero())
	// withdrawn funds stay recorded even after the sale is undone
	assert.True(t, unit.WithdrawnAmount.Equal(decimal.NewFromInt(50)))
}

func TestUnit_ApplyPaymentUpdate_Validation(t *testing.T) {
	t.Run("should reject accumulated amount over the limit", func(t *testing.T) {
		unit := newTestUnit(t)
		customerID := uuid.New()

		err := unit.ApplyPaymentUpdate(PaymentUpdate{
			Status:           PaymentStatusPartial,
			TargetAmount:     decimal.NewNullDecimal(decimal.NewFromInt(200_000_000)),
			PaymentIncrement: decimal.NewFromInt(100_000_000),
			CustomerID:       &customerID,
		})

		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION", domainErr.Code)

		// unit untouched after a rejected update
		assert.Equal(t, PaymentStatusUnpaid, unit.PaymentStatus)
		assert.True(t, unit.AccumulatedAmount.IsZero())
		assert.True(t, unit.Available)
	})

	t.Run("should require a customer for partial sale", func(t *testing.T) {
		unit := newTestUnit(t)

		err := unit.ApplyPaymentUpdate(PaymentUpdate{
			Status:           PaymentStatusPartial,
			TargetAmount:     decimal.NewNullDecimal(decimal.NewFromInt(100)),
			PaymentIncrement: decimal.NewFromInt(10),
		})

		require.Error(t, err)
		assert.Equal(t, PaymentStatusUnpaid, unit.PaymentStatus)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		unit := newTestUnit(t)

		err := unit.ApplyPaymentUpdate(PaymentUpdate{Status: "refunded"})

		assert.Error(t, err)
	})
}

func TestUnit_Funds(t *testing.T) {
	unit := newTestUnit(t)
	unit.AccumulatedAmount = decimal.NewFromInt(120)
	unit.WithdrawnAmount = decimal.NewFromInt(50)

	assert.True(t, unit.AvailableFunds().Equal(decimal.NewFromInt(70)))
	assert.True(t, unit.HasAvailableFunds())

	unit.MarkWithdrawn()

	assert.True(t, unit.WithdrawnAmount.Equal(decimal.NewFromInt(120)))
	assert.True(t, unit.AvailableFunds().IsZero())
	assert.False(t, unit.HasAvailableFunds())
}

func TestUnit_ResetPristine(t *testing.T) {
	unit := newTestUnit(t)
	customerID := uuid.New()
	now := time.Now()
	unit.PaymentStatus = PaymentStatusPartial
	unit.Available = false
	unit.Buyer = ptr("Maria")
	unit.TargetAmount = decimal.NewNullDecimal(decimal.NewFromInt(100))
	unit.AccumulatedAmount = decimal.NewFromInt(100)
	unit.WithdrawnAmount = decimal.NewFromInt(100)
	unit.SaleDate = &now
	unit.CustomerID = &customerID

	unit.ResetPristine()

	assert.True(t, unit.Available)
	assert.Equal(t, PaymentStatusUnpaid, unit.PaymentStatus)
	assert.Nil(t, unit.Buyer)
	assert.Nil(t, unit.SaleDate)
	assert.Nil(t, unit.CustomerID)
	assert.False(t, unit.TargetAmount.Valid)
	assert.True(t, unit.AccumulatedAmount.IsZero())
	assert.True(t, unit.WithdrawnAmount.IsZero())
	assert.True(t, unit.PaymentIncrement.IsZero())
}

func TestNewReversalUnit(t *testing.T) {
	original := newTestUnit(t)
	customerID := uuid.New()
	original.PaymentStatus = PaymentStatusPartial
	original.Available = false
	original.Buyer = ptr("Jorge")
	original.AccumulatedAmount = decimal.NewFromInt(150)
	original.WithdrawnAmount = decimal.NewFromInt(150)
	original.CustomerID = &customerID

	reversal := NewReversalUnit(original)

	assert.NotEqual(t, original.ID, reversal.ID)
	assert.True(t, reversal.IsReversal)
	assert.True(t, reversal.AccumulatedAmount.Equal(decimal.NewFromInt(-150)))
	assert.True(t, reversal.WithdrawnAmount.IsZero())
	assert.True(t, reversal.AvailableFunds().Equal(decimal.NewFromInt(-150)))
	assert.Equal(t, PaymentStatusPartial, reversal.PaymentStatus)
	assert.False(t, reversal.Available)
	assert.Equal(t, original.IntakeBatchID, reversal.IntakeBatchID)
	assert.Equal(t, original.Size, reversal.Size)
	assert.Equal(t, original.Buyer, reversal.Buyer)
	assert.Equal(t, original.CustomerID, reversal.CustomerID)
	require.True(t, reversal.TargetAmount.Valid)
	assert.True(t, reversal.TargetAmount.Decimal.Equal(decimal.NewFromInt(-150)))
}

func TestUnit_DisplayStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      PaymentStatus
		target      decimal.NullDecimal
		accumulated decimal.Decimal
		want        PaymentStatus
	}{
		{
			name:        "unpaid without target",
			status:      PaymentStatusUnpaid,
			accumulated: decimal.Zero,
			want:        PaymentStatusUnpaid,
		},
		{
			name:        "partial below target",
			status:      PaymentStatusPartial,
			target:      decimal.NewNullDecimal(decimal.NewFromInt(100)),
			accumulated: decimal.NewFromInt(60),
			want:        PaymentStatusPartial,
		},
		{
			name:        "partial meeting target shows complete",
			status:      PaymentStatusPartial,
			target:      decimal.NewNullDecimal(decimal.NewFromInt(100)),
			accumulated: decimal.NewFromInt(100),
			want:        PaymentStatusComplete,
		},
		{
			name:        "reversal with negative target stays partial",
			status:      PaymentStatusPartial,
			target:      decimal.NewNullDecimal(decimal.NewFromInt(-150)),
			accumulated: decimal.NewFromInt(-150),
			want:        PaymentStatusPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := newTestUnit(t)
			unit.PaymentStatus = tt.status
			unit.TargetAmount = tt.target
			unit.AccumulatedAmount = tt.accumulated

			assert.Equal(t, tt.want, unit.DisplayStatus())
		})
	}
}

func TestUnit_IsOutstandingDebt(t *testing.T) {
	unit := newTestUnit(t)
	unit.PaymentStatus = PaymentStatusPartial
	unit.Buyer = ptr("Maria")
	unit.TargetAmount = decimal.NewNullDecimal(decimal.NewFromInt(100))
	unit.AccumulatedAmount = decimal.NewFromInt(60)

	assert.True(t, unit.IsOutstandingDebt())

	unit.AccumulatedAmount = decimal.NewFromInt(100)
	assert.False(t, unit.IsOutstandingDebt())

	unit.AccumulatedAmount = decimal.NewFromInt(60)
	unit.Buyer = nil
	assert.False(t, unit.IsOutstandingDebt())

	unit.Buyer = ptr("Maria")
	unit.PaymentStatus = PaymentStatusUnpaid
	assert.False(t, unit.IsOutstandingDebt())
}
