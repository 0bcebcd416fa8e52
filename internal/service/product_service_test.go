package service

import (
	"context"
	"testing"
	"time"

	"github.com/Vic2rious/backend-server/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	products := []model.Product{
		{ID: 1, Name: "Keyboard", Price: price("10.00"), CreatedAt: time.Now()},
		{ID: 2, Name: "Mouse", Price: price("5.00"), CreatedAt: time.Now()},
	}

	repo := new(MockProductRepository)
	repo.On("Count", ctx).Return(int64(12), nil)
	repo.On("GetAll", ctx, 2, 0).Return(products, nil)

	svc := NewProductService(repo, logger)
	page, err := svc.GetAll(ctx, 0, 2)

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(12), page.Pagination.Total)
	assert.Len(t, page.Data, 2)
}

func TestProductService_GetAll_NegativeSkipClamped(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("Count", ctx).Return(int64(0), nil)
	repo.On("GetAll", ctx, 0, 0).Return([]model.Product(nil), nil)

	svc := NewProductService(repo, logger)
	page, err := svc.GetAll(ctx, -5, 0)

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("GetByID", ctx, int64(404)).Return(nil, nil)

	svc := NewProductService(repo, logger)
	product, err := svc.GetByID(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestProductService_Create_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.ProductRequest{Name: "Monitor", Price: price("199.00")}

	repo := new(MockProductRepository)
	repo.On("GetByName", ctx, "Monitor").Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Product")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*model.Product)
			p.ID = 3
		}).
		Return(nil)

	svc := NewProductService(repo, logger)
	product, err := svc.Create(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, int64(3), product.ID)
	assert.Equal(t, "Monitor", product.Name)
	assert.True(t, product.Price.Equal(price("199.00")))
}

func TestProductService_Create_NameConflict(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.Product{ID: 1, Name: "Monitor", Price: price("150.00")}
	req := &model.ProductRequest{Name: "Monitor", Price: price("199.00")}

	repo := new(MockProductRepository)
	repo.On("GetByName", ctx, "Monitor").Return(existing, nil)

	svc := NewProductService(repo, logger)
	product, err := svc.Create(ctx, req)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrProductNameConflict)

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeConflict, domainErr.Code)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_Create_EmptyName(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)

	svc := NewProductService(repo, logger)
	product, err := svc.Create(ctx, &model.ProductRequest{Name: "", Price: price("1.00")})

	require.Error(t, err)
	assert.Nil(t, product)

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeInvalidArgument, domainErr.Code)
}

func TestProductService_Update_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.Product{ID: 1, Name: "Monitor", Price: price("150.00")}
	newPrice := price("175.00")
	req := &model.ProductUpdateRequest{Price: &newPrice}

	repo := new(MockProductRepository)
	repo.On("GetByID", ctx, int64(1)).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	svc := NewProductService(repo, logger)
	product, err := svc.Update(ctx, 1, req)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Monitor", product.Name)
	assert.True(t, product.Price.Equal(newPrice))
}

func TestProductService_Update_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("GetByID", ctx, int64(404)).Return(nil, nil)

	svc := NewProductService(repo, logger)
	product, err := svc.Update(ctx, 404, &model.ProductUpdateRequest{})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_Delete_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.Product{ID: 1, Name: "Monitor", Price: price("150.00")}

	repo := new(MockProductRepository)
	repo.On("GetByID", ctx, int64(1)).Return(existing, nil)
	repo.On("Delete", ctx, int64(1)).Return(nil)

	svc := NewProductService(repo, logger)
	product, err := svc.Delete(ctx, 1)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Monitor", product.Name)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("GetByID", ctx, int64(404)).Return(nil, nil)

	svc := NewProductService(repo, logger)
	product, err := svc.Delete(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
