package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"dealerlot/internal/domain/entity"
	"dealerlot/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockDealerRepo is a testify mock of repository.DealerRepository.
type mockDealerRepo struct {
	mock.Mock
}

func (m *mockDealerRepo) FindByUsername(ctx context.Context, username string) (*entity.Dealer, error) {
	args := m.Called(ctx, username)
	if dealer := args.Get(0); dealer != nil {
		return dealer.(*entity.Dealer), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDealerRepo) Create(ctx context.Context, dealer *entity.Dealer) error {
	args := m.Called(ctx, dealer)

	return args.Error(0)
}

// mockHasher is a testify mock of service.PasswordHasher.
type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// mockTokenService is a testify mock of service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(dealer *entity.Dealer) (string, time.Time, error) {
	args := m.Called(dealer)

	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Validate(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}
