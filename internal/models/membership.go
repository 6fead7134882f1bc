package models

import "time"

// Membership represents the join between organizations and volunteers.
// The underlying `organization_volunteers` table uses a composite primary
// key (organization_id, volunteer_id) and does not have a single `id` column.
type Membership struct {
	OrganizationID int64 `gorm:"primaryKey"`
	VolunteerID    int64 `gorm:"primaryKey"`
	CreatedAt      time.Time
}

func (Membership) TableName() string { return "organization_volunteers" }
