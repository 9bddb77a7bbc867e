package postgres

import (
	"context"
	"time"

	"dealerlot/internal/domain/entity"
	domainerrors "dealerlot/internal/domain/errors"
	"dealerlot/internal/domain/repository"
	"dealerlot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// carRepository implements the repository.CarRepository interface using GORM.
// Every query filters on dealer_id; a car owned by another dealer behaves exactly
// like a car that does not exist.
type carRepository struct {
	db *gorm.DB
}

// NewCarRepository is the constructor for carRepository.
func NewCarRepository(db *gorm.DB) repository.CarRepository {
	return &carRepository{db: db}
}

// Create persists a new car and fills in the generated id and timestamps.
func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	if err := repo.db.WithContext(ctx).Create(carM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required car information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create car")
	}

	car.ID = carM.ID
	car.CreatedAt = carM.CreatedAt
	car.UpdatedAt = carM.UpdatedAt

	return nil
}

// FindByID retrieves a car by id, scoped to the owning dealer.
func (repo *carRepository) FindByID(ctx context.Context, dealerID, carID int64) (*entity.Car, error) {
	var carM model.CarModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND dealer_id = ?", carID, dealerID).
		First(&carM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	return toCarDomain(&carM), nil
}

// FindByDealer retrieves all cars for a dealer, ordered by (make, model).
func (repo *carRepository) FindByDealer(ctx context.Context, dealerID int64) ([]*entity.Car, error) {
	return repo.findCars(ctx, dealerID, "", "")
}

// Search retrieves a dealer's cars matching optional case-insensitive substring filters.
func (repo *carRepository) Search(ctx context.Context, dealerID int64, make, carModel string) ([]*entity.Car, error) {
	return repo.findCars(ctx, dealerID, make, carModel)
}

func (repo *carRepository) findCars(ctx context.Context, dealerID int64, carMake, carModel string) ([]*entity.Car, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CarModel{}).
		Where("dealer_id = ?", dealerID)

	if carMake != "" {
		query = query.Where("LOWER(make) LIKE LOWER(?)", "%"+carMake+"%")
	}
	if carModel != "" {
		query = query.Where("LOWER(model) LIKE LOWER(?)", "%"+carModel+"%")
	}

	var carModels []*model.CarModel
	if err := query.Order("make, model").Find(&carModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	cars := make([]*entity.Car, 0, len(carModels))
	for _, carM := range carModels {
		cars = append(cars, toCarDomain(carM))
	}

	return cars, nil
}

// UpdateStock sets stock level and price and refreshes updated_at in a single
// ownership-scoped statement. Zero rows affected means not found.
func (repo *carRepository) UpdateStock(ctx context.Context, dealerID, carID int64, update repository.CarUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CarModel{}).
		Where("id = ? AND dealer_id = ?", carID, dealerID).
		Updates(map[string]any{
			"stock_level": update.StockLevel,
			"price":       update.Price,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update car")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

// Delete removes a car in a single ownership-scoped statement.
func (repo *carRepository) Delete(ctx context.Context, dealerID, carID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND dealer_id = ?", carID, dealerID).
		Delete(&model.CarModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete car")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCarDomain(data *model.CarModel) *entity.Car {
	if data == nil {
		return nil
	}

	return &entity.Car{
		ID:         data.ID,
		DealerID:   data.DealerID,
		Make:       data.Make,
		Model:      data.Model,
		Year:       data.Year,
		StockLevel: data.StockLevel,
		Price:      data.Price,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCarDomain(data *entity.Car) *model.CarModel {
	if data == nil {
		return nil
	}

	return &model.CarModel{
		ID:         data.ID,
		DealerID:   data.DealerID,
		Make:       data.Make,
		Model:      data.Model,
		Year:       data.Year,
		StockLevel: data.StockLevel,
		Price:      data.Price,
	}
}
