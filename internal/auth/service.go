package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mearajennifer/helper/internal/models"
	"github.com/mearajennifer/helper/internal/store"
)

var (
	ErrNoSuchUser  = errors.New("no account exists with that email address")
	ErrBadPassword = errors.New("incorrect password for the email address entered")
	ErrEmailTaken  = errors.New("an account already exists with that email address")
)

type VolunteerInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

type OrganizationInput struct {
	Name        string
	Email       string
	Password    string
	Address     string
	Category    string
	Description string
	Website     string
}

// Service verifies credentials against the entity store and creates new
// accounts. Passwords are stored as bcrypt hashes and never in the clear.
type Service struct {
	volunteers store.VolunteerRepository
	orgs       store.OrganizationRepository
	categories store.CategoryRepository
}

func NewService(volunteers store.VolunteerRepository, orgs store.OrganizationRepository, categories store.CategoryRepository) *Service {
	return &Service{volunteers: volunteers, orgs: orgs, categories: categories}
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func (s *Service) RegisterVolunteer(ctx context.Context, in VolunteerInput) (*models.Volunteer, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	existing, err := s.volunteers.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	volunteer := &models.Volunteer{
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		PasswordHash: string(hash),
	}
	if err := s.volunteers.Create(ctx, volunteer); err != nil {
		return nil, err
	}
	return volunteer, nil
}

func (s *Service) RegisterOrganization(ctx context.Context, in OrganizationInput) (*models.Organization, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	existing, err := s.orgs.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Address:      strings.TrimSpace(in.Address),
		Description:  in.Description,
		Website:      strings.TrimSpace(in.Website),
	}

	// Category is optional; an unknown name just leaves the org unclassified.
	if name := strings.TrimSpace(in.Category); name != "" {
		category, err := s.categories.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if category != nil {
			org.CategoryID = &category.ID
		}
	}

	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *Service) LoginVolunteer(ctx context.Context, email, password string) (*models.Volunteer, error) {
	volunteer, err := s.volunteers.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, ErrNoSuchUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(volunteer.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}
	return volunteer, nil
}

func (s *Service) LoginOrganization(ctx context.Context, email, password string) (*models.Organization, error) {
	org, err := s.orgs.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrNoSuchUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(org.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}
	return org, nil
}
