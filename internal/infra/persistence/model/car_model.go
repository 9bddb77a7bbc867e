package model

import "time"

// CarModel mirrors the 'cars' table. The (dealer_id) index backs ownership filtering,
// the (make, model) index backs search ordering and matching.
type CarModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	DealerID   int64   `gorm:"index;not null"`
	Make       string  `gorm:"type:varchar(20);not null;index:idx_cars_make_model,priority:1"`
	Model      string  `gorm:"type:varchar(20);not null;index:idx_cars_make_model,priority:2"`
	Year       int     `gorm:"not null"`
	StockLevel int     `gorm:"not null"`
	Price      float64 `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Dealer *DealerModel `gorm:"foreignKey:DealerID"`
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}
