package services

import (
	"worklink_backend/internal/apperrors"
	"worklink_backend/internal/auth"
	"worklink_backend/internal/dto"
	"worklink_backend/internal/models"
	"worklink_backend/internal/repositories"
)

// WorkerGigService covers the gig CRUD of the authenticated worker.
// Ownership is enforced inside each repository query, never as a separate
// authorization step, so a failed match is indistinguishable from a missing
// gig.
type WorkerGigService interface {
	List(principal *auth.Principal) ([]models.Gig, error)
	GetByID(principal *auth.Principal, gigID string) (*models.Gig, error)
	Create(principal *auth.Principal, req *dto.CreateGigRequest) (*models.Gig, error)
	Update(principal *auth.Principal, gigID string, req *dto.UpdateGigRequest) error
	Delete(principal *auth.Principal, gigID string) error
}

type WorkerGigServiceImpl struct {
	gigs     repositories.GigRepository
	profiles repositories.WorkerProfileRepository
}

func NewWorkerGigService(gigs repositories.GigRepository, profiles repositories.WorkerProfileRepository) WorkerGigService {
	return &WorkerGigServiceImpl{gigs: gigs, profiles: profiles}
}

func (s *WorkerGigServiceImpl) List(principal *auth.Principal) ([]models.Gig, error) {
	return s.gigs.FindByOwner(principal.UserID)
}

func (s *WorkerGigServiceImpl) GetByID(principal *auth.Principal, gigID string) (*models.Gig, error) {
	gig, err := s.gigs.FindOwnedByID(gigID, principal.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, err
	}
	return gig, nil
}

func (s *WorkerGigServiceImpl) Create(principal *auth.Principal, req *dto.CreateGigRequest) (*models.Gig, error) {
	if principal.Role != models.UserRoleWorker {
		return nil, apperrors.ErrNotAWorker
	}

	// The principal only carries the user id; the owning profile id needs
	// one extra lookup.
	profile, err := s.profiles.FindByUserID(principal.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}

	gig := &models.Gig{
		WorkerID:    profile.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    models.SkillCategory(req.Category),
		City:        req.City,
		Address:     req.Address,
		Lat:         req.Lat,
		Lng:         req.Lng,
		IsActive:    true,
	}
	if err := s.gigs.Create(gig); err != nil {
		return nil, err
	}
	return gig, nil
}

func (s *WorkerGigServiceImpl) Update(principal *auth.Principal, gigID string, req *dto.UpdateGigRequest) error {
	err := s.gigs.UpdateOwned(gigID, principal.UserID, req.Updates())
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return apperrors.ErrGigNotFound
		}
		return err
	}
	return nil
}

func (s *WorkerGigServiceImpl) Delete(principal *auth.Principal, gigID string) error {
	err := s.gigs.SoftDeleteOwned(gigID, principal.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return apperrors.ErrGigNotFound
		}
		return err
	}
	return nil
}
