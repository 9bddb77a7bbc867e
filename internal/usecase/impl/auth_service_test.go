package impl

import (
	"context"
	"testing"
	"time"

	"dealerlot/internal/domain/entity"
	domainerrors "dealerlot/internal/domain/errors"
	"dealerlot/internal/domain/repository"
	"dealerlot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	dealerRepo   *mockDealerRepo
	hasher       *mockHasher
	tokenService *mockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	dealerRepo := &mockDealerRepo{}
	hasher := &mockHasher{}
	tokenService := &mockTokenService{}

	service := NewAuthService(AuthServiceParams{
		DealerRepo:   dealerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		dealerRepo:   dealerRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.dealerRepo.On("FindByUsername", ctx, "acme").Return(nil, repository.ErrDealerNotFound)
	fx.hasher.On("Hash", "secret1").Return("$2a$10$hashed", nil)
	fx.dealerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Dealer")).
		Run(func(args mock.Arguments) {
			dealer := args.Get(1).(*entity.Dealer)
			dealer.ID = 1
			dealer.CreatedAt = time.Now()
		}).
		Return(nil)

	dealer, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username:    "acme",
		Password:    "secret1",
		CompanyName: "Acme Motors",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), dealer.ID)
	assert.Equal(t, "acme", dealer.Username)
	assert.Equal(t, "$2a$10$hashed", dealer.PasswordHash)
	fx.dealerRepo.AssertExpectations(t)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := &entity.Dealer{ID: 1, Username: "acme"}
	fx.dealerRepo.On("FindByUsername", ctx, "acme").Return(existing, nil)

	dealer, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username:    "acme",
		Password:    "secret1",
		CompanyName: "Acme Motors",
	})

	require.Error(t, err)
	assert.Nil(t, dealer)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	// The password is never hashed when registration is rejected.
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	dealer := &entity.Dealer{
		ID:           1,
		Username:     "acme",
		PasswordHash: "$2a$10$hashed",
		CompanyName:  "Acme Motors",
	}
	expiresAt := time.Now().Add(2 * time.Hour)

	fx.dealerRepo.On("FindByUsername", ctx, "acme").Return(dealer, nil)
	fx.hasher.On("Check", "secret1", "$2a$10$hashed").Return(true)
	fx.tokenService.On("Issue", dealer).Return("signed-token", expiresAt, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "acme", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "Acme Motors", output.CompanyName)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	dealer := &entity.Dealer{ID: 1, Username: "acme", PasswordHash: "$2a$10$hashed"}

	// Unknown username.
	fx.dealerRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrDealerNotFound)
	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "secret1"})
	require.Error(t, unknownErr)

	// Wrong password for an existing dealer.
	fx.dealerRepo.On("FindByUsername", ctx, "acme").Return(dealer, nil)
	fx.hasher.On("Check", "wrong", "$2a$10$hashed").Return(false)
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "acme", Password: "wrong"})
	require.Error(t, wrongErr)

	// Both failures collapse to the same generic credential error so the caller
	// cannot enumerate usernames.
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	// No token is issued on either path.
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}
