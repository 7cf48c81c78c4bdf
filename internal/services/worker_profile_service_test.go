package services

import (
	"errors"
	"testing"

	"worklink_backend/internal/apperrors"
	"worklink_backend/internal/dto"
	"worklink_backend/internal/mocks"
	"worklink_backend/internal/models"
	"worklink_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validProfileRequest() *dto.CreateWorkerProfileRequest {
	return &dto.CreateWorkerProfileRequest{
		Phone:           "03001234567",
		SkillCategory:   "PLUMBING",
		Country:         "Pakistan",
		City:            "Lahore",
		ExperienceYears: 3,
		Cnic:            "35202-1234567-1",
	}
}

func TestCreateProfile_RejectsUnknownSkill(t *testing.T) {
	t.Parallel()

	repo := new(mocks.WorkerProfileRepository)
	svc := NewWorkerProfileService(repo)

	req := validProfileRequest()
	req.SkillCategory = "WELDING"

	_, err := svc.Create("user-1", req)

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "Invalid skillCategory. Allowed:")
	assert.Contains(t, appErr.Message, "PLUMBING")
	repo.AssertNotCalled(t, "CreateWithPromotion", mock.Anything)
}

func TestCreateProfile_RejectsSecondProfile(t *testing.T) {
	t.Parallel()

	existing := &models.WorkerProfile{UserID: "user-1"}

	repo := new(mocks.WorkerProfileRepository)
	repo.On("FindByUserID", "user-1").Return(existing, nil)

	svc := NewWorkerProfileService(repo)
	_, err := svc.Create("user-1", validProfileRequest())

	assert.Equal(t, apperrors.ErrProfileAlreadyExists, err)
	repo.AssertNotCalled(t, "CreateWithPromotion", mock.Anything)
}

func TestCreateProfile_Success(t *testing.T) {
	t.Parallel()

	repo := new(mocks.WorkerProfileRepository)
	repo.On("FindByUserID", "user-1").Return(nil, repositories.ErrProfileNotFound)
	repo.On("CreateWithPromotion", mock.MatchedBy(func(p *models.WorkerProfile) bool {
		return p.UserID == "user-1" &&
			p.SkillCategory == models.SkillPlumbing &&
			p.Cnic == "35202-1234567-1"
	})).Return(nil)

	svc := NewWorkerProfileService(repo)
	resp, err := svc.Create("user-1", validProfileRequest())

	assert.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, models.SkillPlumbing, resp.SkillCategory)
	repo.AssertExpectations(t)
}

func TestCreateProfile_MapsPromotionFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"missing or non-client user", repositories.ErrUserNotFound, apperrors.ErrUserNotFound},
		{"duplicate cnic", repositories.ErrDuplicateCnic, apperrors.ErrDuplicateCnic},
		{"duplicate profile", repositories.ErrDuplicateKey, apperrors.ErrProfileAlreadyExists},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := new(mocks.WorkerProfileRepository)
			repo.On("FindByUserID", "user-1").Return(nil, repositories.ErrProfileNotFound)
			repo.On("CreateWithPromotion", mock.Anything).Return(tc.repoErr)

			svc := NewWorkerProfileService(repo)
			_, err := svc.Create("user-1", validProfileRequest())

			assert.Equal(t, tc.want, err)
		})
	}
}

func TestCreateProfile_PropagatesUnexpectedErrors(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")

	repo := new(mocks.WorkerProfileRepository)
	repo.On("FindByUserID", "user-1").Return(nil, repositories.ErrProfileNotFound)
	repo.On("CreateWithPromotion", mock.Anything).Return(dbErr)

	svc := NewWorkerProfileService(repo)
	_, err := svc.Create("user-1", validProfileRequest())

	assert.Equal(t, dbErr, err)
}

func TestGetProfile_RequiresKey(t *testing.T) {
	t.Parallel()

	repo := new(mocks.WorkerProfileRepository)
	svc := NewWorkerProfileService(repo)

	_, err := svc.Get("")

	assert.Equal(t, apperrors.ErrMissingProfileKey, err)
	repo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestGetProfile_NotFound(t *testing.T) {
	t.Parallel()

	repo := new(mocks.WorkerProfileRepository)
	repo.On("FindByID", "missing").Return(nil, repositories.ErrProfileNotFound)

	svc := NewWorkerProfileService(repo)
	_, err := svc.Get("missing")

	assert.Equal(t, apperrors.ErrProfileNotFound, err)
}

func TestGetProfile_OmitsRoleFromOwner(t *testing.T) {
	t.Parallel()

	profile := &models.WorkerProfile{
		UserID:        "user-1",
		SkillCategory: models.SkillCooking,
		User: &models.User{
			Name:  "Ayesha",
			Email: "ayesha@email.com",
			Role:  models.UserRoleWorker,
		},
	}
	profile.ID = "profile-1"

	repo := new(mocks.WorkerProfileRepository)
	repo.On("FindByID", "profile-1").Return(profile, nil)

	svc := NewWorkerProfileService(repo)
	resp, err := svc.Get("profile-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ayesha", resp.User.Name)
	assert.Empty(t, resp.User.Role)
}

func TestUpdateProfile_RejectsUnknownSkill(t *testing.T) {
	t.Parallel()

	repo := new(mocks.WorkerProfileRepository)
	svc := NewWorkerProfileService(repo)

	bad := "WELDING"
	_, err := svc.Update("user-1", &dto.UpdateWorkerProfileRequest{SkillCategory: &bad})

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "Invalid skillCategory")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProfile_BuildsColumnMap(t *testing.T) {
	t.Parallel()

	phone := "03007654321"
	years := 5

	updated := &models.WorkerProfile{UserID: "user-1", Phone: phone, ExperienceYears: years}

	repo := new(mocks.WorkerProfileRepository)
	repo.On("Update", "user-1", map[string]interface{}{
		"phone":            phone,
		"experience_years": years,
	}).Return(updated, nil)

	svc := NewWorkerProfileService(repo)
	resp, err := svc.Update("user-1", &dto.UpdateWorkerProfileRequest{
		Phone:           &phone,
		ExperienceYears: &years,
	})

	assert.NoError(t, err)
	assert.Equal(t, phone, resp.Phone)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_MapsRepositoryFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"profile missing", repositories.ErrProfileNotFound, apperrors.ErrProfileNotFound},
		{"duplicate cnic", repositories.ErrDuplicateCnic, apperrors.ErrDuplicateCnic},
		{"generic duplicate", repositories.ErrDuplicateKey, apperrors.ErrDuplicateEntry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := new(mocks.WorkerProfileRepository)
			repo.On("Update", "user-1", mock.Anything).Return(nil, tc.repoErr)

			svc := NewWorkerProfileService(repo)
			_, err := svc.Update("user-1", &dto.UpdateWorkerProfileRequest{})

			assert.Equal(t, tc.want, err)
		})
	}
}
