// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/fx"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	"arches/internal/domain/entity"
	domainerrors "arches/internal/domain/errors"
	"arches/internal/domain/repository"
	"arches/internal/domain/service"
	"arches/internal/errors"
	"arches/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPassword       int
	maxUsernameLength int
	queryTimeout      time.Duration
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPassword:       params.Config.PasswordPolicy.MinLength,
		maxUsernameLength: params.Config.PasswordPolicy.MaxUsernameLength,
		queryTimeout:      params.Config.Store.QueryTimeout,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the new user in.
// Checks run in order: username shape, availability, password length.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := input.Username
	if strings.TrimSpace(username) == "" || utf8.RuneCountInString(username) > srv.maxUsernameLength {
		return nil, domainerrors.ErrUsernameInvalid
	}

	queryCtx, cancel := withQueryTimeout(ctx, srv.queryTimeout)
	defer cancel()

	_, err := srv.userRepo.FindByUsername(queryCtx, username)
	switch {
	case err == nil:
		return nil, domainerrors.ErrUsernameTaken
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, translateError(err, "find user by username")
	}

	if utf8.RuneCountInString(input.Password) < srv.minPassword {
		return nil, domainerrors.ErrPasswordTooShort
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(queryCtx, user); err != nil {
		return nil, translateError(err, "create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return srv.issueToken(user)
}

// Login verifies the password and issues a token. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	queryCtx, cancel := withQueryTimeout(ctx, srv.queryTimeout)
	defer cancel()

	user, err := srv.userRepo.FindByUsername(queryCtx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, translateError(err, "find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(user)
}

func (srv *userService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate access token: "+err.Error())
	}

	return &usecase.AuthOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
