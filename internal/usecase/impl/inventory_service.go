package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dealerlot/internal/domain/entity"
	domainerrors "dealerlot/internal/domain/errors"
	"dealerlot/internal/domain/repository"
	"dealerlot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minCarYear = 1900

// inventoryService implements the InventoryUsecase interface.
// Ownership scoping is enforced by passing the authenticated dealer id into every
// repository call; the service itself carries no token or HTTP concepts.
type inventoryService struct {
	carRepo repository.CarRepository
	logger  *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	CarRepo repository.CarRepository
	Logger  *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		carRepo: params.CarRepo,
		logger:  params.Logger,
	}
}

// Add validates the car details and inserts it into the dealer's inventory.
func (srv *inventoryService) Add(ctx context.Context, dealerID int64, input *usecase.AddCarInput) (*entity.Car, error) {
	if details := validateCarInput(input); len(details) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(details...).WrapMessage("add car failed")
	}

	car := &entity.Car{
		DealerID:   dealerID,
		Make:       input.Make,
		Model:      input.Model,
		Year:       input.Year,
		StockLevel: input.StockLevel,
		Price:      input.Price,
	}

	if err := srv.carRepo.Create(ctx, car); err != nil {
		srv.logger.Error("Failed to create car", "error", err, "dealerID", dealerID)

		return nil, errors.Wrap(err, "failed to create car")
	}

	srv.logger.Debug("Car added", "dealerID", dealerID, "carID", car.ID)

	return car, nil
}

// Get retrieves a single car, scoped to the dealer.
func (srv *inventoryService) Get(ctx context.Context, dealerID, carID int64) (*entity.Car, error) {
	car, err := srv.carRepo.FindByID(ctx, dealerID, carID)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound.WrapMessage("get car failed")
		}

		return nil, errors.Wrap(err, "failed to find car")
	}

	return car, nil
}

// List retrieves the dealer's full inventory, ordered by (make, model).
func (srv *inventoryService) List(ctx context.Context, dealerID int64) ([]*entity.Car, error) {
	cars, err := srv.carRepo.FindByDealer(ctx, dealerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	return cars, nil
}

// UpdateStock applies a partial update of stock level and price, then reads the
// record back so the response reflects the refreshed updated_at.
func (srv *inventoryService) UpdateStock(ctx context.Context, dealerID, carID int64, input *usecase.UpdateStockInput) (*entity.Car, error) {
	var details []string
	if input.StockLevel < 0 {
		details = append(details, "stockLevel must not be negative")
	}
	if input.Price < 0 {
		details = append(details, "price must not be negative")
	}
	if len(details) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(details...).WrapMessage("update car failed")
	}

	err := srv.carRepo.UpdateStock(ctx, dealerID, carID, repository.CarUpdate{
		StockLevel: input.StockLevel,
		Price:      input.Price,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound.WrapMessage("update car failed")
		}

		return nil, errors.Wrap(err, "failed to update car")
	}

	car, err := srv.carRepo.FindByID(ctx, dealerID, carID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back updated car")
	}

	srv.logger.Debug("Car updated", "dealerID", dealerID, "carID", carID)

	return car, nil
}

// Remove deletes a car from the dealer's inventory.
func (srv *inventoryService) Remove(ctx context.Context, dealerID, carID int64) error {
	err := srv.carRepo.Delete(ctx, dealerID, carID)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return domainerrors.ErrCarNotFound.WrapMessage("remove car failed")
		}

		return errors.Wrap(err, "failed to delete car")
	}

	srv.logger.Debug("Car removed", "dealerID", dealerID, "carID", carID)

	return nil
}

// Search retrieves the dealer's cars matching optional make/model substring filters.
// Missing filters are no-ops, not errors.
func (srv *inventoryService) Search(ctx context.Context, dealerID int64, make, model string) ([]*entity.Car, error) {
	cars, err := srv.carRepo.Search(ctx, dealerID, make, model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search cars")
	}

	return cars, nil
}

// validateCarInput checks the range constraints on a new car. Shape constraints
// (required fields, lengths, character set) are enforced by the request validator
// at the HTTP boundary.
func validateCarInput(input *usecase.AddCarInput) []string {
	maxYear := time.Now().Year() + 1

	var details []string
	if input.Year < minCarYear || input.Year > maxYear {
		details = append(details, fmt.Sprintf("year must be between %d and %d", minCarYear, maxYear))
	}
	if input.StockLevel < 0 {
		details = append(details, "stockLevel must not be negative")
	}
	if input.Price < 0 {
		details = append(details, "price must not be negative")
	}

	return details
}
