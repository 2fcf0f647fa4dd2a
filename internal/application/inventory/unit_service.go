package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/partner"
	"github.com/zapateria/backend/internal/domain/shared"
)

// UnitService handles sale and payment operations on individual units
type UnitService struct {
	unitRepo     inventory.UnitRepository
	customerRepo partner.CustomerRepository
	txScope      TransactionScope
}

// NewUnitService creates a new UnitService
func NewUnitService(
	unitRepo inventory.UnitRepository,
	customerRepo partner.CustomerRepository,
	txScope TransactionScope,
) *UnitService {
	return &UnitService{
		unitRepo:     unitRepo,
		customerRepo: customerRepo,
		txScope:      txScope,
	}
}

// GetByID retrieves a unit by ID
func (s *UnitService) GetByID(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToUnitResponse(unit)
	return &resp, nil
}

// ListSold retrieves the units with a recorded sale, newest sale first
func (s *UnitService) ListSold(ctx context.Context) ([]UnitResponse, error) {
	units, err := s.unitRepo.FindSold(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = ToUnitResponse(&units[i])
	}

	return responses, nil
}

// ListAvailableByModel retrieves the in-stock units for a shoe model
func (s *UnitService) ListAvailableByModel(ctx context.Context, modelID uuid.UUID) ([]UnitResponse, error) {
	units, err := s.unitRepo.FindAvailableByModel(ctx, modelID)
	if err != nil {
		return nil, err
	}

	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = ToUnitResponse(&units[i])
	}

	return responses, nil
}

// UpdatePayment applies a sale/payment update to a unit
func (s *UnitService) UpdatePayment(ctx context.Context, id uuid.UUID, req UpdateUnitPaymentRequest) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer not found")
			}
			return nil, err
		}
	}

	update := inventory.PaymentUpdate{
		Status:           inventory.PaymentStatus(req.Status),
		WarehouseID:      req.WarehouseID,
		Buyer:            req.Buyer,
		PaymentIncrement: req.PaymentIncrement,
		SaleDate:         req.SaleDate,
		CustomerID:       req.CustomerID,
	}
	if req.TargetAmount != nil {
		update.TargetAmount = decimal.NewNullDecimal(*req.TargetAmount)
	}

	if err := unit.ApplyPaymentUpdate(update); err != nil {
		return nil, err
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	resp := ToUnitResponse(unit)
	return &resp, nil
}

// Refund undoes the sale of a unit and puts the pair back in stock.
//
// When part of the sale's funds were already withdrawn, a negative
// reversal unit is written first so the refunded cash is netted out of a
// future settlement; past withdrawal entries are never rewritten. Both
// steps commit atomically.
func (s *UnitService) Refund(ctx context.Context, id uuid.UUID) (*RefundResponse, error) {
	var (
		unit         *inventory.Unit
		refunded     decimal.Decimal
		wasWithdrawn bool
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		unit, err = repos.Units.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if unit.PaymentStatus == inventory.PaymentStatusUnpaid {
			return shared.NewDomainError("INVALID_STATE", "Unit has no sale to refund")
		}
		if unit.IsReversal {
			return shared.NewDomainError("INVALID_STATE", "Reversal entries cannot be refunded")
		}

		refunded = unit.AccumulatedAmount
		wasWithdrawn = unit.WithdrawnAmount.IsPositive()

		if wasWithdrawn {
			reversal := inventory.NewReversalUnit(unit)
			if err := repos.Units.Save(ctx, reversal); err != nil {
				return err
			}
		}

		unit.ResetPristine()
		return repos.Units.Save(ctx, unit)
	})
	if err != nil {
		return nil, err
	}

	return &RefundResponse{
		Unit:           ToUnitResponse(unit),
		RefundedAmount: refunded,
		WasWithdrawn:   wasWithdrawn,
	}, nil
}
