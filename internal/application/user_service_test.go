package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorylabs/product-catalog-api/internal/infrastructure/memory"
	"github.com/inventorylabs/product-catalog-api/pkg/helpers"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewUserService(memory.NewUserRepository(), nil, nil, logger, 0)
}

func seedUser(t *testing.T, svc *UserService, email, password string) {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	name := "Test User"
	_, err = svc.Repo.Create(context.Background(), email, hash, &name)
	require.NoError(t, err)
}

func TestAuthenticate_Match(t *testing.T) {
	svc := newUserService(t)
	seedUser(t, svc, "admin@example.com", "admin123")

	u, err := svc.Authenticate(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin@example.com", u.Email)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Test User", *u.Name)
}

func TestAuthenticate_EmailCaseInsensitive(t *testing.T) {
	svc := newUserService(t)
	seedUser(t, svc, "admin@example.com", "admin123")

	u, err := svc.Authenticate(context.Background(), "ADMIN@Example.COM", "admin123")
	require.NoError(t, err)
	assert.NotNil(t, u)
}

// Unknown email and wrong password must be observably identical: a nil user
// and a nil error in both cases.
func TestAuthenticate_NoMatchIndistinguishable(t *testing.T) {
	svc := newUserService(t)
	seedUser(t, svc, "admin@example.com", "admin123")

	unknown, errUnknown := svc.Authenticate(context.Background(), "nobody@example.com", "admin123")
	wrongPwd, errWrong := svc.Authenticate(context.Background(), "admin@example.com", "not-the-password")

	assert.Nil(t, unknown)
	assert.Nil(t, wrongPwd)
	assert.NoError(t, errUnknown)
	assert.NoError(t, errWrong)
	assert.Equal(t, errUnknown, errWrong)
}

func TestAuthenticate_NeverExposesHash(t *testing.T) {
	svc := newUserService(t)
	seedUser(t, svc, "admin@example.com", "admin123")

	u, err := svc.Authenticate(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, u)

	// SafeUser carries only id, email, and name; there is no password field
	// to leak. Verify the id maps back to a stored user with a hash that
	// never equals the plain password.
	stored, err := svc.Repo.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "admin123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}
