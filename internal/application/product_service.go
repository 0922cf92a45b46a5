package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
	repo "github.com/inventorylabs/product-catalog-api/internal/domain/repository"
	"github.com/inventorylabs/product-catalog-api/pkg/apperrors"
)

// ProductService wraps the product repository with business-rule validation.
// It is stateless: every method is a single short-lived unit of work and
// store errors propagate to the caller unchanged.
type ProductService struct {
	Repo   repo.ProductRepository
	Logger *logrus.Logger
}

func NewProductService(r repo.ProductRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{Repo: r, Logger: logger}
}

// GetProducts returns all products, newest first.
func (s *ProductService) GetProducts(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.FindAll(ctx)
}

// GetProduct returns the product or (nil, nil) when the id does not exist.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return s.Repo.FindByID(ctx, id)
}

// CreateProduct validates the payload and persists a new product.
// Validation is fail-fast: the first violation wins.
func (s *ProductService) CreateProduct(ctx context.Context, data entity.CreateProductDTO) (*entity.Product, error) {
	if data.Stock < 0 {
		return nil, apperrors.Validation("Stock cannot be negative")
	}
	if strings.TrimSpace(data.Name) == "" {
		return nil, apperrors.Validation("Product name is required")
	}
	if strings.TrimSpace(data.Category) == "" {
		return nil, apperrors.Validation("Category is required")
	}
	return s.Repo.Create(ctx, data)
}

// UpdateProduct applies a partial update. Only supplied fields are validated
// and written; absent fields keep their persisted values.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, data entity.UpdateProductDTO) (*entity.Product, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("Product not found")
	}

	if data.Stock != nil && *data.Stock < 0 {
		return nil, apperrors.Validation("Stock cannot be negative")
	}
	if data.Name != nil && strings.TrimSpace(*data.Name) == "" {
		return nil, apperrors.Validation("Product name cannot be empty")
	}
	if data.Category != nil && strings.TrimSpace(*data.Category) == "" {
		return nil, apperrors.Validation("Category cannot be empty")
	}

	return s.Repo.Update(ctx, id, data)
}

// DeleteProduct removes a single product, failing with not-found when the id
// does not exist.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NotFound("Product not found")
	}
	return s.Repo.Delete(ctx, id)
}

// DeleteProducts removes all matching ids and returns the count actually
// removed. Missing ids are not an error; callers can compare the count with
// the request to detect partial matches.
func (s *ProductService) DeleteProducts(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, apperrors.Validation("No product IDs provided")
	}
	return s.Repo.DeleteMany(ctx, ids)
}
