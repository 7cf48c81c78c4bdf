package services

import (
	"worklink_backend/internal/apperrors"
	"worklink_backend/internal/dto"
	"worklink_backend/internal/models"
	"worklink_backend/internal/repositories"
)

type WorkerProfileService interface {
	Create(userID string, req *dto.CreateWorkerProfileRequest) (*dto.WorkerProfileResponse, error)
	Get(lookupKey string) (*dto.WorkerProfileResponse, error)
	Update(userID string, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error)
}

type WorkerProfileServiceImpl struct {
	profiles repositories.WorkerProfileRepository
}

func NewWorkerProfileService(profiles repositories.WorkerProfileRepository) WorkerProfileService {
	return &WorkerProfileServiceImpl{profiles: profiles}
}

func (s *WorkerProfileServiceImpl) Create(userID string, req *dto.CreateWorkerProfileRequest) (*dto.WorkerProfileResponse, error) {
	skill := models.SkillCategory(req.SkillCategory)
	if !skill.Valid() {
		return nil, apperrors.InvalidSkillCategory(models.SkillCategoryNames())
	}

	_, err := s.profiles.FindByUserID(userID)
	if err == nil {
		return nil, apperrors.ErrProfileAlreadyExists
	}
	if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, err
	}

	profile := &models.WorkerProfile{
		UserID:          userID,
		Phone:           req.Phone,
		SkillCategory:   skill,
		Country:         req.Country,
		City:            req.City,
		ExperienceYears: req.ExperienceYears,
		Cnic:            req.Cnic,
	}

	// Role promotion and profile insert commit or roll back together.
	if err := s.profiles.CreateWithPromotion(profile); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrUserNotFound
		case apperrors.Is(err, repositories.ErrDuplicateCnic):
			return nil, apperrors.ErrDuplicateCnic
		case apperrors.Is(err, repositories.ErrDuplicateKey):
			return nil, apperrors.ErrProfileAlreadyExists
		default:
			return nil, err
		}
	}

	return dto.NewWorkerProfileResponse(profile, true), nil
}

func (s *WorkerProfileServiceImpl) Get(lookupKey string) (*dto.WorkerProfileResponse, error) {
	if lookupKey == "" {
		return nil, apperrors.ErrMissingProfileKey
	}

	// Lookup is by worker-profile id only; there is no userId fallback.
	profile, err := s.profiles.FindByID(lookupKey)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}

	return dto.NewWorkerProfileResponse(profile, false), nil
}

func (s *WorkerProfileServiceImpl) Update(userID string, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error) {
	if req.SkillCategory != nil && !models.SkillCategory(*req.SkillCategory).Valid() {
		return nil, apperrors.InvalidSkillCategory(models.SkillCategoryNames())
	}

	profile, err := s.profiles.Update(userID, req.Updates())
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrProfileNotFound):
			return nil, apperrors.ErrProfileNotFound
		case apperrors.Is(err, repositories.ErrDuplicateCnic):
			return nil, apperrors.ErrDuplicateCnic
		case apperrors.Is(err, repositories.ErrDuplicateKey):
			return nil, apperrors.ErrDuplicateEntry
		default:
			return nil, err
		}
	}

	return dto.NewWorkerProfileResponse(profile, true), nil
}
