package dto

import "worklink_backend/internal/models"

// GigSummary is the projection served by the public listing endpoints.
type GigSummary struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	Category    models.SkillCategory `json:"category"`
	Address     string               `json:"address"`
	City        string               `json:"city"`
	WorkerName  string               `json:"workerName"`
}

// NewGigSummary projects a gig row onto the listing shape. The worker's user
// name is resolved through the preloaded relation when present.
func NewGigSummary(gig models.Gig) GigSummary {
	summary := GigSummary{
		ID:          gig.ID,
		Title:       gig.Title,
		Description: gig.Description,
		Price:       gig.Price,
		Category:    gig.Category,
		Address:     gig.Address,
		City:        gig.City,
	}
	if gig.Worker != nil && gig.Worker.User != nil {
		summary.WorkerName = gig.Worker.User.Name
	}
	return summary
}

func NewGigSummaries(gigs []models.Gig) []GigSummary {
	summaries := make([]GigSummary, 0, len(gigs))
	for _, gig := range gigs {
		summaries = append(summaries, NewGigSummary(gig))
	}
	return summaries
}

// HomeFeedResponse is the payload of the home endpoint.
type HomeFeedResponse struct {
	RecentGigs []GigSummary `json:"recentGigs"`
	TotalGigs  int64        `json:"totalGigs"`
}

// SearchGigsQuery carries the raw query parameters of the search endpoint.
// Enum values are validated in the listing service so the endpoint's error
// messages stay exact.
type SearchGigsQuery struct {
	Query    string `form:"query"`
	Category string `form:"category"`
	City     string `form:"city"`
	Filter   string `form:"filter"`
	Page     int    `form:"page"`
}
