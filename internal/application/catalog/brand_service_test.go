package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zapateria/backend/internal/domain/catalog"
	"github.com/zapateria/backend/internal/domain/shared"
)

// MockBrandRepository is a mock implementation of BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Brand, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBrandRepository) CountModels(ctx context.Context, brandID uuid.UUID) (int64, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).(int64), args.Error(1)
}

func TestBrandService_Create(t *testing.T) {
	t.Run("should create brand successfully", func(t *testing.T) {
		repo := new(MockBrandRepository)
		service := NewBrandService(repo)

		repo.On("ExistsByName", mock.Anything, "Nike").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Brand")).Return(nil)

		resp, err := service.Create(context.Background(), CreateBrandRequest{Name: "Nike"})

		require.NoError(t, err)
		assert.Equal(t, "Nike", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("should reject duplicate name", func(t *testing.T) {
		repo := new(MockBrandRepository)
		service := NewBrandService(repo)

		repo.On("ExistsByName", mock.Anything, "Nike").Return(true, nil)

		_, err := service.Create(context.Background(), CreateBrandRequest{Name: "Nike"})

		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestBrandService_Delete(t *testing.T) {
	t.Run("should delete brand without models", func(t *testing.T) {
		repo := new(MockBrandRepository)
		service := NewBrandService(repo)

		brand, _ := catalog.NewBrand("Nike")
		repo.On("FindByID", mock.Anything, brand.ID).Return(brand, nil)
		repo.On("CountModels", mock.Anything, brand.ID).Return(int64(0), nil)
		repo.On("Delete", mock.Anything, brand.ID).Return(nil)

		err := service.Delete(context.Background(), brand.ID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("should refuse to delete brand with models", func(t *testing.T) {
		repo := new(MockBrandRepository)
		service := NewBrandService(repo)

		brand, _ := catalog.NewBrand("Nike")
		repo.On("FindByID", mock.Anything, brand.ID).Return(brand, nil)
		repo.On("CountModels", mock.Anything, brand.ID).Return(int64(3), nil)

		err := service.Delete(context.Background(), brand.ID)

		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("should return not found for unknown brand", func(t *testing.T) {
		repo := new(MockBrandRepository)
		service := NewBrandService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBrandService_Rename(t *testing.T) {
	t.Run("should rename brand", func(t *testing.T) {
		repo := new(MockBrandRepository)
		service := NewBrandService(repo)

		brand, _ := catalog.NewBrand("Nkie")
		repo.On("FindByID", mock.Anything, brand.ID).Return(brand, nil)
		repo.On("ExistsByName", mock.Anything, "Nike").Return(false, nil)
		repo.On("Save", mock.Anything, brand).Return(nil)

		resp, err := service.Rename(context.Background(), brand.ID, UpdateBrandRequest{Name: "Nike"})

		require.NoError(t, err)
		assert.Equal(t, "Nike", resp.Name)
	})

	t.Run("should reject rename to an existing name", func(t *testing.T) {
		repo := new(MockBrandRepository)
		service := NewBrandService(repo)

		brand, _ := catalog.NewBrand("Adidas")
		repo.On("FindByID", mock.Anything, brand.ID).Return(brand, nil)
		repo.On("ExistsByName", mock.Anything, "Nike").Return(true, nil)

		_, err := service.Rename(context.Background(), brand.ID, UpdateBrandRequest{Name: "Nike"})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}
