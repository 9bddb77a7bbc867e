// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"dealerlot/internal/domain/entity"
	domainerrors "dealerlot/internal/domain/errors"
	"dealerlot/internal/domain/repository"
	"dealerlot/internal/domain/service"
	"dealerlot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	dealerRepo   repository.DealerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	DealerRepo   repository.DealerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		dealerRepo:   params.DealerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates the complete dealer registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Dealer, error) {
	srv.logger.Info("Starting dealer registration", "username", input.Username)

	// 1. Reject if the username is already taken. The unique constraint on the
	// dealers table is the backstop for concurrent registrations.
	_, err := srv.dealerRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, domainerrors.ErrUsernameTaken.WrapMessage("dealer registration failed")
	}
	if !errors.Is(err, repository.ErrDealerNotFound) {
		return nil, errors.Wrap(err, "failed to find dealer by username")
	}

	// 2. Hash the password. The plaintext never goes past this point.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	// 3. Persist the new dealer.
	newDealer := &entity.Dealer{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		CompanyName:  input.CompanyName,
	}
	if err := srv.dealerRepo.Create(ctx, newDealer); err != nil {
		srv.logger.Error("Failed to create dealer", "error", err, "username", input.Username)

		return nil, errors.Wrap(err, "failed to create dealer")
	}

	srv.logger.Debug("Dealer registered successfully", "dealerID", newDealer.ID)

	return newDealer, nil
}

// Login orchestrates the dealer login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting dealer login", "username", input.Username)

	// 1. Find the dealer. A missing dealer and a wrong password must produce the
	// same generic failure so the response never reveals which field was wrong.
	dealer, err := srv.dealerRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrDealerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find dealer by username")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, dealer.PasswordHash) {
		srv.logger.Warn("Login failed", "username", input.Username)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Issue a session token.
	token, expiresAt, err := srv.tokenService.Issue(dealer)
	if err != nil {
		srv.logger.Error("Failed to issue token", "error", err, "dealerID", dealer.ID)

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("Dealer logged in successfully", "dealerID", dealer.ID)

	return &usecase.LoginOutput{
		Token:       token,
		CompanyName: dealer.CompanyName,
		ExpiresAt:   expiresAt,
	}, nil
}
