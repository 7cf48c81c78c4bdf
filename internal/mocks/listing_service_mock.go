package mocks

import (
	"worklink_backend/internal/dto"

	"github.com/stretchr/testify/mock"
)

type ListingService struct{ mock.Mock }

func (m *ListingService) GetHomeFeed(city string, page int) (*dto.HomeFeedResponse, error) {
	args := m.Called(city, page)
	var feed *dto.HomeFeedResponse
	if v := args.Get(0); v != nil {
		feed = v.(*dto.HomeFeedResponse)
	}
	return feed, args.Error(1)
}

func (m *ListingService) SearchGigs(q dto.SearchGigsQuery) ([]dto.GigSummary, error) {
	args := m.Called(q)
	var results []dto.GigSummary
	if v := args.Get(0); v != nil {
		results = v.([]dto.GigSummary)
	}
	return results, args.Error(1)
}

func (m *ListingService) GetRecentGigs(page int) ([]dto.GigSummary, error) {
	args := m.Called(page)
	var results []dto.GigSummary
	if v := args.Get(0); v != nil {
		results = v.([]dto.GigSummary)
	}
	return results, args.Error(1)
}
