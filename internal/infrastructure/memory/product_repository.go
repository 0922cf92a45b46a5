package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
	repo "github.com/inventorylabs/product-catalog-api/internal/domain/repository"
	"github.com/inventorylabs/product-catalog-api/pkg/apperrors"
)

// ProductRepository is an in-memory implementation of the product
// persistence contract, used by tests in place of Postgres.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product
	order    map[string]int
	seq      int
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]entity.Product),
		order:    make(map[string]int),
	}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	// Newest first; ties broken by insertion order so ordering stays stable
	// when timestamps collide within clock resolution.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return r.order[out[i].ID] > r.order[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, data entity.CreateProductDTO) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p := entity.Product{
		ID:          uuid.NewString(),
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Stock:       data.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.seq++
	r.order[p.ID] = r.seq
	r.products[p.ID] = p
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, data entity.UpdateProductDTO) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFound("Product not found")
	}
	if data.Name != nil {
		p.Name = *data.Name
	}
	if data.Description != nil {
		p.Description = data.Description
	}
	if data.Category != nil {
		p.Category = *data.Category
	}
	if data.Stock != nil {
		p.Stock = *data.Stock
	}
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p
	return &p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperrors.NotFound("Product not found")
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, id := range ids {
		if _, ok := r.products[id]; ok {
			delete(r.products, id)
			count++
		}
	}
	return count, nil
}

var _ repo.ProductRepository = (*ProductRepository)(nil)
