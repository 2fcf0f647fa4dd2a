package inventory

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

// MockIntakeBatchRepository is a mock implementation of IntakeBatchRepository
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

func TestCreateIntakeRequest_ExpandSizes(t *testing.T) {
	req := CreateIntakeRequest{
		SizeCounts: []SizeCountInput{
			{Size: 40, Quantity: 2},
			{Size: 42, Quantity: 1},
		},
	}

	assert.Equal(t, []int{40, 40, 42}, req.ExpandSizes())
}

func TestIntakeService_Create(t *testing.T) {
	t.Run("should create one unit per size count", func(t *testing.T) {
		modelRepo := new(MockShoeModelRepository)
		batchRepo := new(MockIntakeBatchRepository)
		warehouseRepo := new(MockWarehouseRepository)
		scope := &fakeTransactionScope{repos: TransactionalRepositories{
			Batches:    batchRepo,
			Warehouses: warehouseRepo,
		}}
		service := NewIntakeService(modelRepo, batchRepo, warehouseRepo, scope)

		brand, err := catalog.NewBrand("Nike")
		require.NoError(t, err)
		model, err := catalog.NewShoeModel(brand.ID, "Air Max")
		require.NoError(t, err)
		warehouse, err := partner.NewWarehouse("Principal")
		require.NoError(t, err)

		modelRepo.On("FindByID", mock.Anything, model.ID).Return(model, nil)
		warehouseRepo.On("FindFirst", mock.Anything).Return(warehouse, nil)

		var saved *inventory.IntakeBatch
		batchRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.IntakeBatch")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*inventory.IntakeBatch)
			}).
			Return(nil)

		resp, err := service.Create(context.Background(), CreateIntakeRequest{
			ShoeModelID: model.ID,
			SizeCounts: []SizeCountInput{
				{Size: 40, Quantity: 2},
				{Size: 42, Quantity: 1},
			},
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Len(t, saved.Units, 3)
		assert.Equal(t, warehouse.ID, saved.Units[0].WarehouseID)
		assert.Len(t, resp.Units, 3)
	})

	t.Run("should reject unknown model", func(t *testing.T) {
		modelRepo := new(MockShoeModelRepository)
		batchRepo := new(MockIntakeBatchRepository)
		service := NewIntakeService(modelRepo, batchRepo, new(MockWarehouseRepository), &fakeTransactionScope{})

		modelID := uuid.New()
		modelRepo.On("FindByID", mock.Anything, modelID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(context.Background(), CreateIntakeRequest{
			ShoeModelID: modelID,
			SizeCounts:  []SizeCountInput{{Size: 40, Quantity: 1}},
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_MODEL", domainErr.Code)
	})

	t.Run("should bootstrap a default warehouse when none exist", func(t *testing.T) {
		modelRepo := new(MockShoeModelRepository)
		batchRepo := new(MockIntakeBatchRepository)
		warehouseRepo := new(MockWarehouseRepository)
		scope := &fakeTransactionScope{repos: TransactionalRepositories{
			Batches:    batchRepo,
			Warehouses: warehouseRepo,
		}}
		service := NewIntakeService(modelRepo, batchRepo, warehouseRepo, scope)

		brand, err := catalog.NewBrand("Nike")
		require.NoError(t, err)
		model, err := catalog.NewShoeModel(brand.ID, "Air Max")
		require.NoError(t, err)

		modelRepo.On("FindByID", mock.Anything, model.ID).Return(model, nil)
		warehouseRepo.On("FindFirst", mock.Anything).Return(nil, shared.ErrNotFound)
		warehouseRepo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Warehouse")).Return(nil)
		batchRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.IntakeBatch")).Return(nil)

		_, err = service.Create(context.Background(), CreateIntakeRequest{
			ShoeModelID: model.ID,
			SizeCounts:  []SizeCountInput{{Size: 38, Quantity: 1}},
		})

		require.NoError(t, err)
		warehouseRepo.AssertCalled(t, "Save", mock.Anything, mock.AnythingOfType("*partner.Warehouse"))
	})
}

func TestIntakeService_ListByModel(t *testing.T) {
	t.Run("should resolve warehouse names on units", func(t *testing.T) {
		modelRepo := new(MockShoeModelRepository)
		batchRepo := new(MockIntakeBatchRepository)
		warehouseRepo := new(MockWarehouseRepository)
		service := NewIntakeService(modelRepo, batchRepo, warehouseRepo, &fakeTransactionScope{})

		brand, err := catalog.NewBrand("Nike")
		require.NoError(t, err)
		model, err := catalog.NewShoeModel(brand.ID, "Air Max")
		require.NoError(t, err)
		warehouse, err := partner.NewWarehouse("Principal")
		require.NoError(t, err)

		batch, err := inventory.NewIntakeBatch(model.ID, time.Now(), []int{40, 41}, warehouse.ID)
		require.NoError(t, err)

		modelRepo.On("FindByID", mock.Anything, model.ID).Return(model, nil)
		batchRepo.On("FindByModel", mock.Anything, model.ID).Return([]inventory.IntakeBatch{*batch}, nil)
		warehouseRepo.On("FindAll", mock.Anything, mock.Anything).Return([]partner.Warehouse{*warehouse}, nil)

		responses, err := service.ListByModel(context.Background(), model.ID)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		require.Len(t, responses[0].Units, 2)
		assert.Equal(t, "Principal", responses[0].Units[0].WarehouseName)
		assert.Equal(t, "Principal", responses[0].Units[1].WarehouseName)
	})

	t.Run("should leave name empty for a deleted warehouse", func(t *testing.T) {
		modelRepo := new(MockShoeModelRepository)
		batchRepo := new(MockIntakeBatchRepository)
		warehouseRepo := new(MockWarehouseRepository)
		service := NewIntakeService(modelRepo, batchRepo, warehouseRepo, &fakeTransactionScope{})

		brand, err := catalog.NewBrand("Nike")
		require.NoError(t, err)
		model, err := catalog.NewShoeModel(brand.ID, "Air Max")
		require.NoError(t, err)

		batch, err := inventory.NewIntakeBatch(model.ID, time.Now(), []int{40}, uuid.New())
		require.NoError(t, err)

		modelRepo.On("FindByID", mock.Anything, model.ID).Return(model, nil)
		batchRepo.On("FindByModel", mock.Anything, model.ID).Return([]inventory.IntakeBatch{*batch}, nil)
		warehouseRepo.On("FindAll", mock.Anything, mock.Anything).Return([]partner.Warehouse{}, nil)

		responses, err := service.ListByModel(context.Background(), model.ID)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Empty(t, responses[0].Units[0].WarehouseName)
	})
}
