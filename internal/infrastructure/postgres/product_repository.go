package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
	repo "github.com/inventorylabs/product-catalog-api/internal/domain/repository"
	"github.com/inventorylabs/product-catalog-api/pkg/apperrors"
)

const productColumns = "id, name, description, category, stock, created_at, updated_at"

// ProductRepository is the pgx-backed implementation of the product
// persistence contract.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, data entity.CreateProductDTO) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, category, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING `+productColumns+`
	`, data.Name, data.Description, data.Category, data.Stock)

	return scanProduct(row)
}

// Update writes only the supplied fields. A zero-row result means the id was
// gone by the time the statement ran, which is reported as not-found so the
// check-then-write sequence cannot silently no-op.
func (r *ProductRepository) Update(ctx context.Context, id string, data entity.UpdateProductDTO) (*entity.Product, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if data.Name != nil {
		add("name", *data.Name)
	}
	if data.Description != nil {
		add("description", *data.Description)
	}
	if data.Category != nil {
		add("category", *data.Category)
	}
	if data.Stock != nil {
		add("stock", *data.Stock)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), productColumns,
	)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}

// DeleteMany removes every matching id in one statement and reports how many
// rows went away. Ids with no matching row are skipped, not failed.
func (r *ProductRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repo.ProductRepository = (*ProductRepository)(nil)
