// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete registration workflow:
// validate fields, check uniqueness, then persist (the store hashes the
// password internally at the point of persistence).
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("username", input.Username))

	if err := srv.validate.Struct(input); err != nil {
		srv.log(ctx).Warn("Signup validation failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(validationDetails(err)), "signup validation failed")
	}

	// Uniqueness pre-check. The unique indexes remain the authoritative
	// guard: two signups racing on the same username both pass this check,
	// and the store's Create rejects exactly one of them.
	_, err := srv.userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Signup rejected, user already exists", slog.String("username", input.Username))

		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("signup failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed.WithDetails(err.Error()), "failed to check for existing user")
	}

	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		PhoneNum: input.PhoneNum,
		Location: input.Location,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed.WithDetails(err.Error()), "failed to create user during signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.String("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser}, nil
}

// Login orchestrates the authentication workflow: look up by username,
// verify the password against the stored digest, issue a token.
// Unknown usernames and wrong passwords produce the same generic failure so
// responses never reveal whether an account exists.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenSigningFailed.WithDetails(err.Error()), "failed to generate token during login")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// validationDetails flattens validator errors into one descriptive message.
func validationDetails(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Field() {
		case "PhoneNum":
			details = append(details, "phoneNum must be exactly 10 digits")
		case "Location":
			details = append(details, "location must be a 5 digit zip code")
		default:
			details = append(details, fmt.Sprintf("%s is required", strings.ToLower(fieldErr.Field()[:1])+fieldErr.Field()[1:]))
		}
	}

	return strings.Join(details, "; ")
}
