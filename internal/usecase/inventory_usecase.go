package usecase

import (
	"context"

	"dealerlot/internal/domain/entity"
)

// AddCarInput defines the data required to add a car to a dealer's inventory.
type AddCarInput struct {
	Make       string
	Model      string
	Year       int
	StockLevel int
	Price      float64
}

// UpdateStockInput defines the partial update of a car: only stock and price change.
type UpdateStockInput struct {
	StockLevel int
	Price      float64
}

// InventoryUsecase defines inventory operations. Every method takes the
// authenticated dealer's id as the scoping key; the id comes from validated token
// claims, never from the request body.
type InventoryUsecase interface {
	Add(ctx context.Context, dealerID int64, input *AddCarInput) (*entity.Car, error)
	Get(ctx context.Context, dealerID, carID int64) (*entity.Car, error)
	List(ctx context.Context, dealerID int64) ([]*entity.Car, error)
	UpdateStock(ctx context.Context, dealerID, carID int64, input *UpdateStockInput) (*entity.Car, error)
	Remove(ctx context.Context, dealerID, carID int64) error
	Search(ctx context.Context, dealerID int64, make, model string) ([]*entity.Car, error)
}
