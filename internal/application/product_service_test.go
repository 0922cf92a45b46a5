package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
	"github.com/inventorylabs/product-catalog-api/internal/infrastructure/memory"
	"github.com/inventorylabs/product-catalog-api/pkg/apperrors"
)

func newProductService() *ProductService {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewProductService(memory.NewProductRepository(), logger)
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		data    entity.CreateProductDTO
		wantMsg string
	}{
		{
			name:    "negative stock",
			data:    entity.CreateProductDTO{Name: "Mouse", Category: "Accessories", Stock: -1},
			wantMsg: "Stock cannot be negative",
		},
		{
			name:    "empty name",
			data:    entity.CreateProductDTO{Name: "", Category: "Accessories", Stock: 1},
			wantMsg: "Product name is required",
		},
		{
			name:    "whitespace name",
			data:    entity.CreateProductDTO{Name: "   ", Category: "Accessories", Stock: 1},
			wantMsg: "Product name is required",
		},
		{
			name:    "empty category",
			data:    entity.CreateProductDTO{Name: "Mouse", Category: " ", Stock: 1},
			wantMsg: "Category is required",
		},
		{
			name:    "stock checked before name",
			data:    entity.CreateProductDTO{Name: "", Category: "", Stock: -5},
			wantMsg: "Stock cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newProductService()
			p, err := svc.CreateProduct(context.Background(), tt.data)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCreateProduct_RoundTrip(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, entity.CreateProductDTO{
		Name:        "Keyboard",
		Description: strptr("Mechanical, tenkeyless"),
		Category:    "Accessories",
		Stock:       7,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Keyboard", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Mechanical, tenkeyless", *got.Description)
	assert.Equal(t, "Accessories", got.Category)
	assert.Equal(t, 7, got.Stock)
}

func TestCreateProduct_AbsentDescriptionIsNull(t *testing.T) {
	svc := newProductService()

	p, err := svc.CreateProduct(context.Background(), entity.CreateProductDTO{
		Name:     "Mouse",
		Category: "Accessories",
		Stock:    10,
	})
	require.NoError(t, err)
	assert.Nil(t, p.Description)
}

func TestUpdateProduct_Partial(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, entity.CreateProductDTO{
		Name:        "Monitor",
		Description: strptr("27 inch"),
		Category:    "Electronics",
		Stock:       3,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ID, entity.UpdateProductDTO{Stock: intptr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, "Monitor", updated.Name)
	assert.Equal(t, "Electronics", updated.Category)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "27 inch", *updated.Description)
}

func TestUpdateProduct_Validation(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, entity.CreateProductDTO{
		Name:     "Cable",
		Category: "Accessories",
		Stock:    1,
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    entity.UpdateProductDTO
		wantMsg string
	}{
		{
			name:    "negative stock",
			data:    entity.UpdateProductDTO{Stock: intptr(-1)},
			wantMsg: "Stock cannot be negative",
		},
		{
			name:    "empty name",
			data:    entity.UpdateProductDTO{Name: strptr("  ")},
			wantMsg: "Product name cannot be empty",
		},
		{
			name:    "empty category",
			data:    entity.UpdateProductDTO{Category: strptr("")},
			wantMsg: "Category cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.UpdateProduct(ctx, created.ID, tt.data)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	// Absent fields are not validated: an all-nil payload is a no-op update.
	p, err := svc.UpdateProduct(ctx, created.ID, entity.UpdateProductDTO{})
	require.NoError(t, err)
	assert.Equal(t, "Cable", p.Name)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc := newProductService()

	p, err := svc.UpdateProduct(context.Background(), "missing", entity.UpdateProductDTO{Stock: intptr(1)})
	require.Error(t, err)
	assert.Nil(t, p)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteProduct_Lifecycle(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, entity.CreateProductDTO{
		Name:     "Mouse",
		Category: "Accessories",
		Stock:    10,
	})
	require.NoError(t, err)
	assert.Nil(t, created.Description)

	_, err = svc.UpdateProduct(ctx, created.ID, entity.UpdateProductDTO{Stock: intptr(-1)})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "Stock cannot be negative", err.Error())

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	err = svc.DeleteProduct(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteProducts_EmptyList(t *testing.T) {
	svc := newProductService()

	n, err := svc.DeleteProducts(context.Background(), nil)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "No product IDs provided", err.Error())
}

func TestDeleteProducts_PartialMatch(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, entity.CreateProductDTO{
		Name:     "Webcam",
		Category: "Electronics",
		Stock:    2,
	})
	require.NoError(t, err)

	n, err := svc.DeleteProducts(ctx, []string{created.ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDeleteProducts_NoneExist(t *testing.T) {
	svc := newProductService()

	n, err := svc.DeleteProducts(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGetProducts_NewestFirst(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	first, err := svc.CreateProduct(ctx, entity.CreateProductDTO{Name: "First", Category: "C", Stock: 1})
	require.NoError(t, err)
	second, err := svc.CreateProduct(ctx, entity.CreateProductDTO{Name: "Second", Category: "C", Stock: 1})
	require.NoError(t, err)

	products, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, second.ID, products[0].ID)
	assert.Equal(t, first.ID, products[1].ID)
}

func TestGetProducts_Empty(t *testing.T) {
	svc := newProductService()

	products, err := svc.GetProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
