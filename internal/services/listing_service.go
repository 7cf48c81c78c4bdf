package services

import (
	"worklink_backend/internal/apperrors"
	"worklink_backend/internal/dto"
	"worklink_backend/internal/models"
	"worklink_backend/internal/repositories"
)

const (
	defaultCity = "Lahore"

	homeFeedPageSize = 10
	recentPageSize   = 10
	searchPageSize   = 20
)

type ListingService interface {
	GetHomeFeed(city string, page int) (*dto.HomeFeedResponse, error)
	SearchGigs(q dto.SearchGigsQuery) ([]dto.GigSummary, error)
	GetRecentGigs(page int) ([]dto.GigSummary, error)
}

type ListingServiceImpl struct {
	gigs repositories.GigRepository
}

func NewListingService(gigs repositories.GigRepository) ListingService {
	return &ListingServiceImpl{gigs: gigs}
}

// GetHomeFeed serves the zigzag feed for a city: a balanced mix of the
// newest and the oldest eligible gigs, so long-unfilled listings keep
// getting surface time next to fresh ones.
func (s *ListingServiceImpl) GetHomeFeed(city string, page int) (*dto.HomeFeedResponse, error) {
	if city == "" {
		city = defaultCity
	}
	if page < 1 {
		page = 1
	}

	total, err := s.gigs.CountActive(city)
	if err != nil {
		return nil, err
	}

	plan := planHomeFeed(total, page)

	if plan.oldTake == 0 {
		// Not enough surplus beyond the window to mix in old gigs; plain
		// newest-first page.
		gigs, err := s.gigs.FindActive(city, true, plan.recentTake, plan.skip)
		if err != nil {
			return nil, err
		}
		return &dto.HomeFeedResponse{
			RecentGigs: dto.NewGigSummaries(gigs),
			TotalGigs:  total,
		}, nil
	}

	recent, err := s.gigs.FindActive(city, true, plan.recentTake, plan.skip)
	if err != nil {
		return nil, err
	}
	old, err := s.gigs.FindActive(city, false, plan.oldTake, plan.skip)
	if err != nil {
		return nil, err
	}

	return &dto.HomeFeedResponse{
		RecentGigs: interleave(dto.NewGigSummaries(recent), dto.NewGigSummaries(old)),
		TotalGigs:  total,
	}, nil
}

func (s *ListingServiceImpl) SearchGigs(q dto.SearchGigsQuery) ([]dto.GigSummary, error) {
	filter := models.SearchFilter(q.Filter)
	if q.Filter == "" {
		filter = models.FilterRecent
	}
	if !filter.Valid() {
		return nil, apperrors.ErrInvalidFilter
	}
	if q.Category != "" && !models.SkillCategory(q.Category).Valid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if q.Query == "" && q.Category == "" && q.City == "" {
		return nil, apperrors.ErrMissingSearchParams
	}

	city := q.City
	if city == "" {
		city = defaultCity
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	gigs, err := s.gigs.Search(repositories.GigSearchCriteria{
		Query:    q.Query,
		Category: models.SkillCategory(q.Category),
		City:     city,
		Filter:   filter,
		Limit:    searchPageSize,
		Offset:   (page - 1) * searchPageSize,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewGigSummaries(gigs), nil
}

func (s *ListingServiceImpl) GetRecentGigs(page int) ([]dto.GigSummary, error) {
	if page < 1 {
		page = 1
	}

	gigs, err := s.gigs.FindActive("", true, recentPageSize, (page-1)*recentPageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewGigSummaries(gigs), nil
}
