package mocks

import (
	"worklink_backend/internal/auth"
	"worklink_backend/internal/dto"
	"worklink_backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type WorkerProfileService struct{ mock.Mock }

func (m *WorkerProfileService) Create(userID string, req *dto.CreateWorkerProfileRequest) (*dto.WorkerProfileResponse, error) {
	args := m.Called(userID, req)
	var resp *dto.WorkerProfileResponse
	if v := args.Get(0); v != nil {
		resp = v.(*dto.WorkerProfileResponse)
	}
	return resp, args.Error(1)
}

func (m *WorkerProfileService) Get(lookupKey string) (*dto.WorkerProfileResponse, error) {
	args := m.Called(lookupKey)
	var resp *dto.WorkerProfileResponse
	if v := args.Get(0); v != nil {
		resp = v.(*dto.WorkerProfileResponse)
	}
	return resp, args.Error(1)
}

func (m *WorkerProfileService) Update(userID string, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error) {
	args := m.Called(userID, req)
	var resp *dto.WorkerProfileResponse
	if v := args.Get(0); v != nil {
		resp = v.(*dto.WorkerProfileResponse)
	}
	return resp, args.Error(1)
}

type WorkerGigService struct{ mock.Mock }

func (m *WorkerGigService) List(principal *auth.Principal) ([]models.Gig, error) {
	args := m.Called(principal)
	var gigs []models.Gig
	if v := args.Get(0); v != nil {
		gigs = v.([]models.Gig)
	}
	return gigs, args.Error(1)
}

func (m *WorkerGigService) GetByID(principal *auth.Principal, gigID string) (*models.Gig, error) {
	args := m.Called(principal, gigID)
	var gig *models.Gig
	if v := args.Get(0); v != nil {
		gig = v.(*models.Gig)
	}
	return gig, args.Error(1)
}

func (m *WorkerGigService) Create(principal *auth.Principal, req *dto.CreateGigRequest) (*models.Gig, error) {
	args := m.Called(principal, req)
	var gig *models.Gig
	if v := args.Get(0); v != nil {
		gig = v.(*models.Gig)
	}
	return gig, args.Error(1)
}

func (m *WorkerGigService) Update(principal *auth.Principal, gigID string, req *dto.UpdateGigRequest) error {
	return m.Called(principal, gigID, req).Error(0)
}

func (m *WorkerGigService) Delete(principal *auth.Principal, gigID string) error {
	return m.Called(principal, gigID).Error(0)
}
