package handler

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"roster/config"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/infra/auth"
	"roster/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepository is an in-memory stand-in for the document store. It
// honors the real store's contract: the password is hashed exactly once
// inside Create, and duplicate username or email surfaces as a conflict.
type memoryUserRepository struct {
	hasher service.PasswordHasher
	users  []*entity.User
	nextID int
}

func newMemoryUserRepository(hasher service.PasswordHasher) *memoryUserRepository {
	return &memoryUserRepository{hasher: hasher}
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) FindByUsernameOrEmail(_ context.Context, username, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already registered")
		}
	}

	digest, err := r.hasher.Hash(user.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during create")
	}

	r.nextID++
	user.ID = strconv.Itoa(r.nextID)
	user.Password = digest

	stored := *user
	r.users = append(r.users, &stored)

	return nil
}

// TestUserFlow_SignupThenLogin drives the full account lifecycle through the
// real handlers, workflow and crypto services, with only the store replaced
// by an in-memory double: register, collide, authenticate, get rejected.
func TestUserFlow_SignupThenLogin(t *testing.T) {
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokenService, err := auth.NewJWTService(&config.Config{SecretKey: "integration-secret"})
	require.NoError(t, err)

	repo := newMemoryUserRepository(hasher)
	uc := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     repo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	e := newTestServer(t, uc)

	// Fresh signup succeeds with a confirmation only.
	rec := doJSON(e, http.MethodPost, "/api/users/signup",
		`{"username":"alice","password":"Secret123","email":"alice@example.com","phoneNum":"1234567890","location":"12345"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User created successfully", decodeBody(t, rec)["message"])

	// A second signup reusing the email collides, even with a new username.
	rec = doJSON(e, http.MethodPost, "/api/users/signup",
		`{"username":"alice2","password":"Other456","email":"alice@example.com","phoneNum":"0987654321","location":"54321"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User already exists", decodeBody(t, rec)["message"])

	// The stored password is a digest, never the plaintext.
	stored, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", stored.Password)

	// Login with the right password yields a token bound to the account.
	rec = doJSON(e, http.MethodPost, "/api/users/login",
		`{"username":"alice","password":"Secret123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody(t, rec)["token"]
	require.NotEmpty(t, token)

	claims, err := tokenService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)

	// Login with the wrong password is rejected with the generic message.
	rec = doJSON(e, http.MethodPost, "/api/users/login",
		`{"username":"alice","password":"WrongPass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", decodeBody(t, rec)["message"])
}
