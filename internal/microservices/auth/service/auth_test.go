package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"coffeeos/internal/config"
	"coffeeos/internal/domain"
)

type fakeUserRepo struct {
	users map[string]domain.User // keyed by username
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *domain.User) error {
	f.users[u.Username] = *u
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, _, username string) (domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context, _ string) ([]domain.User, error) {
	return nil, nil
}

func newAuthFixture() AuthServiceInterface {
	repo := &fakeUserRepo{users: map[string]domain.User{}}
	return NewAuthService(repo, config.AuthConfig{JWTSecret: "test-secret", TokenTTL: 60})
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "branch-1", domain.RegisterRequest{
		Username: "cashier1", Password: "cashier123", DisplayName: "Casey", Role: "cashier",
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.NotEqual(t, "cashier123", u.PasswordHash, "password must be stored hashed")

	resp, err := svc.Login(ctx, "branch-1", domain.LoginRequest{Username: "cashier1", Password: "cashier123"})
	require.NoError(t, err)
	require.Equal(t, "cashier", resp.Role)

	claims, err := ParseToken(resp.Token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, "cashier", claims.Role)
	require.Equal(t, "branch-1", claims.BranchID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "branch-1", domain.RegisterRequest{
		Username: "cashier1", Password: "cashier123", Role: "cashier",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "branch-1", domain.LoginRequest{Username: "cashier1", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Login(ctx, "branch-1", domain.LoginRequest{Username: "nobody", Password: "cashier123"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "branch-1", domain.RegisterRequest{
		Username: "admin", Password: "admin123", Role: "admin",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, "branch-1", domain.RegisterRequest{
		Username: "admin", Password: "other456", Role: "cashier",
	})
	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "branch-1", domain.RegisterRequest{
		Username: "cashier1", Password: "cashier123", Role: "cashier",
	})
	require.NoError(t, err)
	resp, err := svc.Login(ctx, "branch-1", domain.LoginRequest{Username: "cashier1", Password: "cashier123"})
	require.NoError(t, err)

	_, err = ParseToken(resp.Token, []byte("some-other-secret"))
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = ParseToken("not.a.token", []byte("test-secret"))
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
