package repository

import (
	"context"

	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
)

// UserRepository defines the persistence contract for user accounts.
// Lookups return (nil, nil) when no row matches. Email matching is
// case-insensitive (citext unique column).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, email, passwordHash string, name *string) (*entity.User, error)
}
