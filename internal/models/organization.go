package models

import "time"

type Organization struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255"`
	Address      string `gorm:"size:255"`
	CategoryID   *int64 `gorm:"index"`
	Description  string `gorm:"type:text"`
	Website      string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relations
	Category   *Category   `gorm:"foreignKey:CategoryID"`
	Volunteers []Volunteer `gorm:"many2many:organization_volunteers;"`
}
