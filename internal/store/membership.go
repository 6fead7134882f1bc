package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/mearajennifer/helper/internal/models"
)

type MembershipRepository interface {
	// Link records that a volunteer belongs to an organization. Linking the
	// same pair twice is a no-op.
	Link(ctx context.Context, orgID, volunteerID int64) error
	Exists(ctx context.Context, orgID, volunteerID int64) (bool, error)
}

type GormMembershipRepository struct {
	db *gorm.DB
}

func NewGormMembershipRepository(db *gorm.DB) *GormMembershipRepository {
	return &GormMembershipRepository{db: db}
}

func (r *GormMembershipRepository) Link(ctx context.Context, orgID, volunteerID int64) error {
	membership := models.Membership{OrganizationID: orgID, VolunteerID: volunteerID}
	return r.db.WithContext(ctx).
		Where("organization_id = ? AND volunteer_id = ?", orgID, volunteerID).
		FirstOrCreate(&membership).Error
}

func (r *GormMembershipRepository) Exists(ctx context.Context, orgID, volunteerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("organization_id = ? AND volunteer_id = ?", orgID, volunteerID).
		Count(&count).Error
	return count > 0, err
}
