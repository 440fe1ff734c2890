// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	identity          service.IdentityGenerator
	passwordMinLength int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Identity     service.IdentityGenerator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	passwordMinLength := 6
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PasswordMinLength > 0 {
		passwordMinLength = params.Config.Auth.PasswordMinLength
	}

	return &accountService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		identity:          params.Identity,
		passwordMinLength: passwordMinLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and signs it in. Duplicate detection rides
// on the store's unique constraint, so two concurrent registrations of the
// same email cannot both succeed.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)
	if !util.ValidateEmail(email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if !util.ValidatePasswordLength(input.Password, srv.passwordMinLength) {
		return nil, domainerrors.ErrWeakPassword
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           srv.identity.NewUserID(),
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrDuplicateEmail
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	token, err := srv.tokenService.IssueToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password return the same error so the response does not reveal which
// accounts exist.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up user for login", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Verify resolves a validated token's subject back to the stored account.
func (srv *accountService) Verify(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}

// UpdateAddress replaces the account's contact fields. A body with nothing
// in it is rejected rather than blanking the stored address.
func (srv *accountService) UpdateAddress(ctx context.Context, userID string, input usecase.UpdateAddressInput) (*entity.User, error) {
	patch := repository.AddressPatch{
		Phone:      input.Phone,
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
	}
	if patch.Phone == "" && patch.Street == "" && patch.City == "" && patch.State == "" && patch.PostalCode == "" {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	user, err := srv.userRepo.UpdateAddress(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to update address", slog.String("userID", userID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	srv.log(ctx).Debug("Address updated", slog.String("userID", userID))

	return user, nil
}
