package impl

import (
	"context"
	"io"
	"log/slog"

	"roster/internal/domain/entity"
	"roster/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserRepository is a testify mock for repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	args := m.Called(ctx, username, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// mockPasswordHasher is a testify mock for service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// mockTokenService is a testify mock for service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(userID string) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}
