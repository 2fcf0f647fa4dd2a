package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zapateria/backend/internal/domain/catalog"
	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/partner"
	"github.com/zapateria/backend/internal/domain/shared"
)

// MockUnitRepository is a mock implementation of inventory.UnitRepository
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Unit, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Unit, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindSold(ctx context.Context) ([]inventory.Unit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindAvailableByModel(ctx context.Context, modelID uuid.UUID) ([]inventory.Unit, error) {
	args := m.Called(ctx, modelID)
	return args.Get(0).([]inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) Save(ctx context.Context, unit *inventory.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIntakeBatchRepository is a mock implementation of inventory.IntakeBatchRepository
type MockIntakeBatchRepository struct {
	mock.Mock
}

func (m *MockIntakeBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.IntakeBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.IntakeBatch), args.Error(1)
}

func (m *MockIntakeBatchRepository) FindByModel(ctx context.Context, modelID uuid.UUID) ([]inventory.IntakeBatch, error) {
	args := m.Called(ctx, modelID)
	return args.Get(0).([]inventory.IntakeBatch), args.Error(1)
}

func (m *MockIntakeBatchRepository) CountByModel(ctx context.Context, modelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, modelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIntakeBatchRepository) Save(ctx context.Context, batch *inventory.IntakeBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockIntakeBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShoeModelRepository is a mock implementation of catalog.ShoeModelRepository
type MockShoeModelRepository struct {
	mock.Mock
}

func (m *MockShoeModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ShoeModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ShoeModel), args.Error(1)
}

func (m *MockShoeModelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ShoeModel, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.ShoeModel), args.Error(1)
}

func (m *MockShoeModelRepository) FindByBrand(ctx context.Context, brandID uuid.UUID, filter shared.Filter) ([]catalog.ShoeModel, error) {
	args := m.Called(ctx, brandID, filter)
	return args.Get(0).([]catalog.ShoeModel), args.Error(1)
}

func (m *MockShoeModelRepository) Save(ctx context.Context, model *catalog.ShoeModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockShoeModelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWarehouseRepository is a mock implementation of partner.WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindFirst(ctx context.Context) (*partner.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Warehouse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, warehouse *partner.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestStockOverviewService_Overview(t *testing.T) {
	unitRepo := new(MockUnitRepository)
	batchRepo := new(MockIntakeBatchRepository)
	modelRepo := new(MockShoeModelRepository)
	warehouseRepo := new(MockWarehouseRepository)
	service := NewStockOverviewService(unitRepo, batchRepo, modelRepo, warehouseRepo)

	warehouse, err := partner.NewWarehouse("Principal")
	require.NoError(t, err)
	brand, err := catalog.NewBrand("Nike")
	require.NoError(t, err)
	model, err := catalog.NewShoeModel(brand.ID, "Air Max")
	require.NoError(t, err)
	model.Brand = brand
	batch, err := inventory.NewIntakeBatch(model.ID, time.Now(), []int{40, 42, 42}, warehouse.ID)
	require.NoError(t, err)

	unitRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		available, ok := f.Filters["available"].(bool)
		return ok && available
	})).Return(batch.Units, nil)
	warehouseRepo.On("FindAll", mock.Anything, mock.Anything).
		Return([]partner.Warehouse{*warehouse}, nil)
	batchRepo.On("FindByID", mock.Anything, batch.ID).Return(batch, nil)
	modelRepo.On("FindByID", mock.Anything, model.ID).Return(model, nil)

	resp, err := service.Overview(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Warehouses, 1)
	assert.Equal(t, "Principal", resp.Warehouses[0].WarehouseName)
	require.Len(t, resp.Warehouses[0].Brands, 1)
	assert.Equal(t, "Nike", resp.Warehouses[0].Brands[0].Brand)
	require.Len(t, resp.Warehouses[0].Brands[0].Models, 1)

	modelStock := resp.Warehouses[0].Brands[0].Models[0]
	assert.Equal(t, "Air Max", modelStock.Model)
	// distinct sizes, ascending; duplicate 42 still counts as two pairs
	assert.Equal(t, []int{40, 42}, modelStock.Sizes)
	assert.Equal(t, 3, modelStock.Pairs)
	assert.Equal(t, 3, resp.TotalPairs)
}
