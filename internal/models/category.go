package models

import "time"

// Category is a lookup entity used to classify organizations.
type Category struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time
}
