package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mearajennifer/helper/internal/models"
)

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	FindByID(ctx context.Context, id int64) (*models.Volunteer, error)
	FindByEmail(ctx context.Context, email string) (*models.Volunteer, error)
	// FindByOrganization returns every volunteer linked to the organization
	// through the organization_volunteers join table.
	FindByOrganization(ctx context.Context, orgID int64) ([]models.Volunteer, error)
}

type GormVolunteerRepository struct {
	db *gorm.DB
}

func NewGormVolunteerRepository(db *gorm.DB) *GormVolunteerRepository {
	return &GormVolunteerRepository{db: db}
}

func (r *GormVolunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *GormVolunteerRepository) FindByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.WithContext(ctx).First(&volunteer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func (r *GormVolunteerRepository) FindByEmail(ctx context.Context, email string) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&volunteer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func (r *GormVolunteerRepository) FindByOrganization(ctx context.Context, orgID int64) ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	err := r.db.WithContext(ctx).
		Joins("JOIN organization_volunteers ov ON ov.volunteer_id = volunteers.id").
		Where("ov.organization_id = ?", orgID).
		Find(&volunteers).Error
	return volunteers, err
}
