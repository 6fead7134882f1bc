package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mearajennifer/helper/internal/models"
)

// In-memory repository implementations backing tests and local development
// without a MySQL instance.

type inMemoryVolunteerRepository struct {
	volunteers map[int64]*models.Volunteer
	nextID     int64
	mutex      sync.RWMutex

	memberships *inMemoryMembershipRepository
}

type inMemoryOrganizationRepository struct {
	orgs   map[int64]*models.Organization
	nextID int64
	mutex  sync.RWMutex

	memberships *inMemoryMembershipRepository
}

type MemoryCategoryRepository struct {
	categories map[int64]*models.Category
	nextID     int64
	mutex      sync.RWMutex
}

type inMemoryMembershipRepository struct {
	pairs map[string]*models.Membership
	mutex sync.RWMutex
}

// NewInMemory returns a linked set of in-memory repositories sharing one
// membership table, so cross-entity lookups traverse the same links.
func NewInMemory() (VolunteerRepository, OrganizationRepository, *MemoryCategoryRepository, MembershipRepository) {
	memberships := &inMemoryMembershipRepository{pairs: make(map[string]*models.Membership)}
	volunteers := &inMemoryVolunteerRepository{
		volunteers:  make(map[int64]*models.Volunteer),
		memberships: memberships,
	}
	orgs := &inMemoryOrganizationRepository{
		orgs:        make(map[int64]*models.Organization),
		memberships: memberships,
	}
	categories := &MemoryCategoryRepository{categories: make(map[int64]*models.Category)}
	return volunteers, orgs, categories, memberships
}

func pairKey(orgID, volunteerID int64) string {
	return fmt.Sprintf("%d:%d", orgID, volunteerID)
}

func (r *inMemoryVolunteerRepository) Create(_ context.Context, volunteer *models.Volunteer) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.volunteers {
		if existing.Email == volunteer.Email {
			return fmt.Errorf("volunteer email already exists")
		}
	}

	r.nextID++
	volunteer.ID = r.nextID
	copied := *volunteer
	r.volunteers[volunteer.ID] = &copied
	return nil
}

func (r *inMemoryVolunteerRepository) FindByID(_ context.Context, id int64) (*models.Volunteer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if volunteer, exists := r.volunteers[id]; exists {
		copied := *volunteer
		return &copied, nil
	}
	return nil, nil
}

func (r *inMemoryVolunteerRepository) FindByEmail(_ context.Context, email string) (*models.Volunteer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, volunteer := range r.volunteers {
		if volunteer.Email == email {
			copied := *volunteer
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryVolunteerRepository) FindByOrganization(ctx context.Context, orgID int64) ([]models.Volunteer, error) {
	links, err := r.memberships.findByOrganization(orgID)
	if err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []models.Volunteer
	for _, link := range links {
		if volunteer, exists := r.volunteers[link.VolunteerID]; exists {
			result = append(result, *volunteer)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *inMemoryOrganizationRepository) Create(_ context.Context, org *models.Organization) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.orgs {
		if existing.Email == org.Email {
			return fmt.Errorf("organization email already exists")
		}
	}

	r.nextID++
	org.ID = r.nextID
	copied := *org
	r.orgs[org.ID] = &copied
	return nil
}

func (r *inMemoryOrganizationRepository) FindByID(_ context.Context, id int64) (*models.Organization, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if org, exists := r.orgs[id]; exists {
		copied := *org
		return &copied, nil
	}
	return nil, nil
}

func (r *inMemoryOrganizationRepository) FindByEmail(_ context.Context, email string) (*models.Organization, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, org := range r.orgs {
		if org.Email == email {
			copied := *org
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryOrganizationRepository) FindAll(_ context.Context) ([]models.Organization, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []models.Organization
	for _, org := range r.orgs {
		result = append(result, *org)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *inMemoryOrganizationRepository) FindByVolunteer(ctx context.Context, volunteerID int64) ([]models.Organization, error) {
	links, err := r.memberships.findByVolunteer(volunteerID)
	if err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []models.Organization
	for _, link := range links {
		if org, exists := r.orgs[link.OrganizationID]; exists {
			result = append(result, *org)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryCategoryRepository) FindAll(_ context.Context) ([]models.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []models.Category
	for _, category := range r.categories {
		result = append(result, *category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *MemoryCategoryRepository) FindByName(_ context.Context, name string) (*models.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, category := range r.categories {
		if category.Name == name {
			copied := *category
			return &copied, nil
		}
	}
	return nil, nil
}

// Add seeds one category row, mirroring seed.Categories for tests.
func (r *MemoryCategoryRepository) Add(name string) *models.Category {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.nextID++
	category := &models.Category{ID: r.nextID, Name: name}
	r.categories[category.ID] = category
	return category
}

func (r *inMemoryMembershipRepository) Link(_ context.Context, orgID, volunteerID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := pairKey(orgID, volunteerID)
	if _, exists := r.pairs[key]; exists {
		return nil
	}
	r.pairs[key] = &models.Membership{OrganizationID: orgID, VolunteerID: volunteerID}
	return nil
}

func (r *inMemoryMembershipRepository) Exists(_ context.Context, orgID, volunteerID int64) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.pairs[pairKey(orgID, volunteerID)]
	return exists, nil
}

func (r *inMemoryMembershipRepository) findByOrganization(orgID int64) ([]*models.Membership, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*models.Membership
	for _, link := range r.pairs {
		if link.OrganizationID == orgID {
			result = append(result, link)
		}
	}
	return result, nil
}

func (r *inMemoryMembershipRepository) findByVolunteer(volunteerID int64) ([]*models.Membership, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*models.Membership
	for _, link := range r.pairs {
		if link.VolunteerID == volunteerID {
			result = append(result, link)
		}
	}
	return result, nil
}
