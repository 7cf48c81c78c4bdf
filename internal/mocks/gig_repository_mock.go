package mocks

import (
	"worklink_backend/internal/models"
	"worklink_backend/internal/repositories"

	"github.com/stretchr/testify/mock"
)

type GigRepository struct{ mock.Mock }

func (m *GigRepository) CountActive(city string) (int64, error) {
	args := m.Called(city)
	return args.Get(0).(int64), args.Error(1)
}

func (m *GigRepository) FindActive(city string, newestFirst bool, limit, offset int) ([]models.Gig, error) {
	args := m.Called(city, newestFirst, limit, offset)
	var gigs []models.Gig
	if v := args.Get(0); v != nil {
		gigs = v.([]models.Gig)
	}
	return gigs, args.Error(1)
}

func (m *GigRepository) Search(criteria repositories.GigSearchCriteria) ([]models.Gig, error) {
	args := m.Called(criteria)
	var gigs []models.Gig
	if v := args.Get(0); v != nil {
		gigs = v.([]models.Gig)
	}
	return gigs, args.Error(1)
}

func (m *GigRepository) FindByOwner(userID string) ([]models.Gig, error) {
	args := m.Called(userID)
	var gigs []models.Gig
	if v := args.Get(0); v != nil {
		gigs = v.([]models.Gig)
	}
	return gigs, args.Error(1)
}

func (m *GigRepository) FindOwnedByID(gigID, userID string) (*models.Gig, error) {
	args := m.Called(gigID, userID)
	var gig *models.Gig
	if v := args.Get(0); v != nil {
		gig = v.(*models.Gig)
	}
	return gig, args.Error(1)
}

func (m *GigRepository) Create(gig *models.Gig) error {
	return m.Called(gig).Error(0)
}

func (m *GigRepository) UpdateOwned(gigID, userID string, updates map[string]interface{}) error {
	return m.Called(gigID, userID, updates).Error(0)
}

func (m *GigRepository) SoftDeleteOwned(gigID, userID string) error {
	return m.Called(gigID, userID).Error(0)
}
