package postgres

import (
	"context"

	"dealerlot/internal/domain/entity"
	domainerrors "dealerlot/internal/domain/errors"
	"dealerlot/internal/domain/repository"
	"dealerlot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dealerRepository implements the repository.DealerRepository interface using GORM.
type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository is the constructor for dealerRepository.
// It returns the repository as a repository.DealerRepository interface, adhering to dependency inversion.
func NewDealerRepository(db *gorm.DB) repository.DealerRepository {
	return &dealerRepository{db: db}
}

// FindByUsername retrieves a single dealer by their unique username.
func (repo *dealerRepository) FindByUsername(ctx context.Context, username string) (*entity.Dealer, error) {
	var dealerM model.DealerModel

	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&dealerM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealerNotFound
		}

		return nil, errors.Wrap(err, "failed to find dealer by username")
	}

	return toDealerDomain(&dealerM), nil
}

// Create persists a new dealer row. The unique constraint on username is the
// backstop for the uniqueness check done in the auth usecase.
func (repo *dealerRepository) Create(ctx context.Context, dealer *entity.Dealer) error {
	dealerM := fromDealerDomain(dealer)

	if err := repo.db.WithContext(ctx).Create(dealerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("dealer registration failed")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDealerCreationFailed.WrapMessage("missing required dealer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dealer")
	}

	dealer.ID = dealerM.ID
	dealer.CreatedAt = dealerM.CreatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toDealerDomain(data *model.DealerModel) *entity.Dealer {
	if data == nil {
		return nil
	}

	return &entity.Dealer{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CompanyName:  data.CompanyName,
		CreatedAt:    data.CreatedAt,
	}
}

func fromDealerDomain(data *entity.Dealer) *model.DealerModel {
	if data == nil {
		return nil
	}

	return &model.DealerModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CompanyName:  data.CompanyName,
	}
}
