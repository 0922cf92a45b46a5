package entity

import "time"

// Product is the aggregate root for the catalog domain.
// Description is nullable by design: an absent description is stored as SQL NULL.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductDTO carries the caller-supplied fields for a new product.
// ID and timestamps are assigned by the store.
type CreateProductDTO struct {
	Name        string
	Description *string
	Category    string
	Stock       int
}

// UpdateProductDTO is a partial payload: nil fields are left untouched.
type UpdateProductDTO struct {
	Name        *string
	Description *string
	Category    *string
	Stock       *int
}
