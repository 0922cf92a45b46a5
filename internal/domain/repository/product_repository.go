package repository

import (
	"context"

	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
)

// ProductRepository defines the persistence contract for products,
// independent of storage technology.
//
// FindByID returns (nil, nil) when the id does not exist: absence is an
// ordinary result at this layer, not an error. Update and Delete report
// apperrors.NotFound when the conditional write affects zero rows.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, data entity.CreateProductDTO) (*entity.Product, error)
	Update(ctx context.Context, id string, data entity.UpdateProductDTO) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
