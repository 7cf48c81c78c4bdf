package mocks

import (
	"worklink_backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type WorkerProfileRepository struct{ mock.Mock }

func (m *WorkerProfileRepository) FindByID(id string) (*models.WorkerProfile, error) {
	args := m.Called(id)
	var profile *models.WorkerProfile
	if v := args.Get(0); v != nil {
		profile = v.(*models.WorkerProfile)
	}
	return profile, args.Error(1)
}

func (m *WorkerProfileRepository) FindByUserID(userID string) (*models.WorkerProfile, error) {
	args := m.Called(userID)
	var profile *models.WorkerProfile
	if v := args.Get(0); v != nil {
		profile = v.(*models.WorkerProfile)
	}
	return profile, args.Error(1)
}

func (m *WorkerProfileRepository) CreateWithPromotion(profile *models.WorkerProfile) error {
	return m.Called(profile).Error(0)
}

func (m *WorkerProfileRepository) Update(userID string, updates map[string]interface{}) (*models.WorkerProfile, error) {
	args := m.Called(userID, updates)
	var profile *models.WorkerProfile
	if v := args.Get(0); v != nil {
		profile = v.(*models.WorkerProfile)
	}
	return profile, args.Error(1)
}
