package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
	repo "github.com/inventorylabs/product-catalog-api/internal/domain/repository"
)

// UserRepository is an in-memory implementation of the user persistence
// contract. Emails compare case-insensitively, matching the citext column
// used in Postgres.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]entity.User)}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, name *string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	u := entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  passwordHash,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[u.ID] = u
	return &u, nil
}

var _ repo.UserRepository = (*UserRepository)(nil)
