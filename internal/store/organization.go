package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mearajennifer/helper/internal/models"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	FindByID(ctx context.Context, id int64) (*models.Organization, error)
	FindByEmail(ctx context.Context, email string) (*models.Organization, error)
	FindAll(ctx context.Context) ([]models.Organization, error)
	// FindByVolunteer returns every organization the volunteer is linked to.
	FindByVolunteer(ctx context.Context, volunteerID int64) ([]models.Organization, error)
}

type GormOrganizationRepository struct {
	db *gorm.DB
}

func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

func (r *GormOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *GormOrganizationRepository) FindByID(ctx context.Context, id int64) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *GormOrganizationRepository) FindByEmail(ctx context.Context, email string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *GormOrganizationRepository) FindAll(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.WithContext(ctx).Order("name").Find(&orgs).Error
	return orgs, err
}

func (r *GormOrganizationRepository) FindByVolunteer(ctx context.Context, volunteerID int64) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.WithContext(ctx).
		Joins("JOIN organization_volunteers ov ON ov.organization_id = organizations.id").
		Where("ov.volunteer_id = ?", volunteerID).
		Find(&orgs).Error
	return orgs, err
}
