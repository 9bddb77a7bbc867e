// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// DealerModel mirrors the 'dealers' table.
type DealerModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CompanyName  string    `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealerModel) TableName() string {
	return "dealers"
}
