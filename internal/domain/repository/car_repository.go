package repository

import (
	"context"
	"errors"

	"dealerlot/internal/domain/entity"
)

// ErrCarNotFound is returned when a car does not exist for the given dealer.
// A car owned by another dealer is deliberately indistinguishable from an absent one.
var ErrCarNotFound = errors.New("car not found")

// CarUpdate carries the mutable fields of a car. All other fields are fixed at creation.
type CarUpdate struct {
	StockLevel int
	Price      float64
}

// CarRepository defines ownership-scoped operations for car persistence.
// Every method takes the owning dealer's id; implementations must filter on it.
type CarRepository interface {
	// Create persists a new car and fills in the generated id and timestamps.
	Create(ctx context.Context, car *entity.Car) error

	// FindByID retrieves a car by id, scoped to the owning dealer.
	FindByID(ctx context.Context, dealerID, carID int64) (*entity.Car, error)

	// FindByDealer retrieves all cars for a dealer, ordered by (make, model).
	FindByDealer(ctx context.Context, dealerID int64) ([]*entity.Car, error)

	// Search retrieves a dealer's cars matching optional case-insensitive substring
	// filters on make and model, ordered by (make, model). Empty filters match all.
	Search(ctx context.Context, dealerID int64, make, model string) ([]*entity.Car, error)

	// UpdateStock sets stock level and price and refreshes updated_at, scoped to the
	// owning dealer. Returns ErrCarNotFound when no row matched.
	UpdateStock(ctx context.Context, dealerID, carID int64, update CarUpdate) error

	// Delete removes a car, scoped to the owning dealer.
	// Returns ErrCarNotFound when no row matched.
	Delete(ctx context.Context, dealerID, carID int64) error
}
