package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zapateria/backend/internal/domain/catalog"
	"github.com/zapateria/backend/internal/domain/finance"
	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/shared"
)

// WithdrawalService handles cash settlement and the money/debt views
type WithdrawalService struct {
	unitRepo       inventory.UnitRepository
	batchRepo      inventory.IntakeBatchRepository
	modelRepo      catalog.ShoeModelRepository
	withdrawalRepo finance.WithdrawalRepository
	txScope        TransactionScope
}

// NewWithdrawalService creates a new WithdrawalService
func NewWithdrawalService(
	unitRepo inventory.UnitRepository,
	batchRepo inventory.IntakeBatchRepository,
	modelRepo catalog.ShoeModelRepository,
	withdrawalRepo finance.WithdrawalRepository,
	txScope TransactionScope,
) *WithdrawalService {
	return &WithdrawalService{
		unitRepo:       unitRepo,
		batchRepo:      batchRepo,
		modelRepo:      modelRepo,
		withdrawalRepo: withdrawalRepo,
		txScope:        txScope,
	}
}

// unitLabel resolves the brand and model names behind a unit, caching per
// call since settlements often cover many units of the same batch
type unitLabel struct {
	brand string
	model string
}

func (s *WithdrawalService) resolveLabels(ctx context.Context, units []inventory.Unit) (map[uuid.UUID]unitLabel, error) {
	labels := make(map[uuid.UUID]unitLabel)
	batchModel := make(map[uuid.UUID]uuid.UUID)
	modelCache := make(map[uuid.UUID]unitLabel)

	for _, unit := range units {
		modelID, ok := batchModel[unit.IntakeBatchID]
		if !ok {
			batch, err := s.batchRepo.FindByID(ctx, unit.IntakeBatchID)
			if err != nil {
				return nil, err
			}
			modelID = batch.ShoeModelID
			batchModel[unit.IntakeBatchID] = modelID
		}

		label, ok := modelCache[modelID]
		if !ok {
			model, err := s.modelRepo.FindByID(ctx, modelID)
			if err != nil {
				return nil, err
			}
			label = unitLabel{model: model.Name}
			if model.Brand != nil {
				label.brand = model.Brand.Name
			}
			modelCache[modelID] = label
		}

		labels[unit.ID] = label
	}

	return labels, nil
}

// ListAvailableFunds returns every sold unit whose funds are not fully
// withdrawn, with the grand total the owner could take out right now.
// Reversal units show up with negative amounts and pull the total down.
func (s *WithdrawalService) ListAvailableFunds(ctx context.Context) (*AvailableFundsResponse, error) {
	units, err := s.unitRepo.FindSold(ctx)
	if err != nil {
		return nil, err
	}

	withFunds := make([]inventory.Unit, 0, len(units))
	for _, unit := range units {
		if unit.HasAvailableFunds() {
			withFunds = append(withFunds, unit)
		}
	}

	labels, err := s.resolveLabels(ctx, withFunds)
	if err != nil {
		return nil, err
	}

	resp := &AvailableFundsResponse{
		Entries: make([]FundsEntry, 0, len(withFunds)),
		Total:   decimal.Zero,
	}
	for _, unit := range withFunds {
		amount := unit.AvailableFunds()
		label := labels[unit.ID]
		resp.Entries = append(resp.Entries, FundsEntry{
			UnitID:        unit.ID,
			Brand:         label.brand,
			Model:         label.model,
			Size:          unit.Size,
			Buyer:         unit.Buyer,
			IsReversal:    unit.IsReversal,
			PaymentStatus: string(unit.DisplayStatus()),
			Amount:        amount,
			SaleDate:      unit.SaleDate,
		})
		resp.Total = resp.Total.Add(amount)
	}

	return resp, nil
}

// ListOutstandingDebts returns the partially paid sales with a named
// buyer and money still owed
func (s *WithdrawalService) ListOutstandingDebts(ctx context.Context) ([]DebtEntry, error) {
	units, err := s.unitRepo.FindSold(ctx)
	if err != nil {
		return nil, err
	}

	debtors := make([]inventory.Unit, 0)
	for _, unit := range units {
		if unit.IsOutstandingDebt() {
			debtors = append(debtors, unit)
		}
	}

	labels, err := s.resolveLabels(ctx, debtors)
	if err != nil {
		return nil, err
	}

	entries := make([]DebtEntry, 0, len(debtors))
	for _, unit := range debtors {
		label := labels[unit.ID]
		target := unit.TargetAmount.Decimal
		entries = append(entries, DebtEntry{
			UnitID:      unit.ID,
			Brand:       label.brand,
			Model:       label.model,
			Size:        unit.Size,
			Buyer:       *unit.Buyer,
			CustomerID:  unit.CustomerID,
			Target:      target,
			Accumulated: unit.AccumulatedAmount,
			Remaining:   target.Sub(unit.AccumulatedAmount),
			SaleDate:    unit.SaleDate,
		})
	}

	return entries, nil
}

// Settle withdraws the available funds of the requested units in one
// atomic step: a withdrawal record is written with one frozen detail line
// per unit, and each unit's withdrawn amount is raised to its accumulated
// total. Unknown IDs are ignored and units with nothing available are
// skipped; if nothing is left the settlement is rejected.
func (s *WithdrawalService) Settle(ctx context.Context, req SettleRequest) (*WithdrawalResponse, error) {
	withdrawnAt := time.Now()
	if req.WithdrawnAt != nil {
		withdrawnAt = *req.WithdrawnAt
	}

	var withdrawal *finance.Withdrawal
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		units, err := repos.Units.FindByIDs(ctx, req.UnitIDs)
		if err != nil {
			return err
		}

		eligible := make([]inventory.Unit, 0, len(units))
		for _, unit := range units {
			if unit.HasAvailableFunds() {
				eligible = append(eligible, unit)
			}
		}
		if len(eligible) == 0 {
			return shared.NewDomainError("EMPTY_WITHDRAWAL", "None of the selected units has funds to withdraw")
		}

		labels, err := s.resolveLabels(ctx, eligible)
		if err != nil {
			return err
		}

		items := make([]finance.ItemInput, 0, len(eligible))
		for i := range eligible {
			unit := &eligible[i]
			amount := unit.AvailableFunds()
			label := labels[unit.ID]
			items = append(items, finance.ItemInput{
				UnitID:      unit.ID,
				Description: finance.DetailLine(label.brand, label.model, unit.Size, unit.Buyer, amount),
				Amount:      amount,
			})
		}

		withdrawal, err = finance.NewWithdrawal(withdrawnAt, items)
		if err != nil {
			return err
		}
		if err := repos.Withdrawals.Save(ctx, withdrawal); err != nil {
			return err
		}

		for i := range eligible {
			unit := &eligible[i]
			unit.MarkWithdrawn()
			if err := repos.Units.Save(ctx, unit); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToWithdrawalResponse(withdrawal), nil
}

// GetByID retrieves one withdrawal with its items
func (s *WithdrawalService) GetByID(ctx context.Context, id uuid.UUID) (*WithdrawalResponse, error) {
	withdrawal, err := s.withdrawalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToWithdrawalResponse(withdrawal), nil
}

// ListHistory returns all withdrawals, newest first
func (s *WithdrawalService) ListHistory(ctx context.Context) ([]WithdrawalResponse, error) {
	withdrawals, err := s.withdrawalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]WithdrawalResponse, len(withdrawals))
	for i := range withdrawals {
		responses[i] = *ToWithdrawalResponse(&withdrawals[i])
	}

	return responses, nil
}
