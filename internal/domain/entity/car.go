package entity

import "time"

// Car is a vehicle listing owned by exactly one dealer. A car is only ever visible
// or mutable through its owning dealer's id.
type Car struct {
	ID         int64
	DealerID   int64 // Owning dealer; every repository query filters on this.
	Make       string
	Model      string
	Year       int
	StockLevel int     // Units in stock, never negative.
	Price      float64 // Listing price, never negative.
	CreatedAt  time.Time
	UpdatedAt  time.Time // Refreshed on every mutation.
}
