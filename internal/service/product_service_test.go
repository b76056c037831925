package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"garabato-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogRepository is a mock implementation of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogRepository) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogRepository) Update(ctx context.Context, id int, req *model.UpdateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testProduct() *model.Product {
	now := time.Date(2025, 5, 12, 8, 30, 0, 0, time.UTC)
	return &model.Product{
		ID:        4,
		Name:      "Tote bag",
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetAll", mock.Anything).Return([]model.Product{*testProduct()}, nil)

		svc := NewProductService(repo, logger)

		products, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 1)
		repo.AssertExpectations(t)
	})

	t.Run("Repository error is wrapped", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetAll", mock.Anything).Return(nil, errors.New("read failed"))

		svc := NewProductService(repo, logger)

		_, err := svc.GetAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get products")
	})
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetByID", mock.Anything, 4).Return(testProduct(), nil)

		svc := NewProductService(repo, logger)

		product, err := svc.GetByID(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, "Tote bag", product.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetByID", mock.Anything, 9).Return(nil, nil)

		svc := NewProductService(repo, logger)

		_, err := svc.GetByID(context.Background(), 9)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Non-positive id never reaches the repository", func(t *testing.T) {
		repo := new(MockCatalogRepository)

		svc := NewProductService(repo, logger)

		_, err := svc.GetByID(context.Background(), 0)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		repo.AssertNotCalled(t, "GetByID")
	})
}

func TestProductService_Create(t *testing.T) {
	repo := new(MockCatalogRepository)
	req := &model.CreateProductRequest{Name: "Tote bag", Currency: "USD"}
	repo.On("Create", mock.Anything, req).Return(testProduct(), nil)

	svc := NewProductService(repo, zerolog.Nop())

	product, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 4, product.ID)
	repo.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Not found passes through unwrapped", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("Update", mock.Anything, 9, mock.Anything).Return(nil, model.ErrProductNotFound)

		svc := NewProductService(repo, logger)

		_, err := svc.Update(context.Background(), 9, &model.UpdateProductRequest{})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Repository error is wrapped", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("Update", mock.Anything, 4, mock.Anything).Return(nil, errors.New("write failed"))

		svc := NewProductService(repo, logger)

		_, err := svc.Update(context.Background(), 4, &model.UpdateProductRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update product")
	})
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("Delete", mock.Anything, 4).Return(nil)

		svc := NewProductService(repo, logger)

		assert.NoError(t, svc.Delete(context.Background(), 4))
	})

	t.Run("Not found passes through unwrapped", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("Delete", mock.Anything, 9).Return(model.ErrProductNotFound)

		svc := NewProductService(repo, logger)

		err := svc.Delete(context.Background(), 9)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}
