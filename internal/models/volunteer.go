package models

import "time"

type Volunteer struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber  string `gorm:"size:32"`
	PasswordHash string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Organizations []Organization `gorm:"many2many:organization_volunteers;"`
}
