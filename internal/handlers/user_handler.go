package handlers

import (
	"net/http"

	"worklink_backend/internal/dto"
	"worklink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the public listing endpoints. No authentication is
// required here; gigs are browsed anonymously.
type UserHandler struct {
	*BaseHandler
	listings services.ListingService
}

func NewUserHandler(base *BaseHandler, listings services.ListingService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		listings:    listings,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.GetHomeFeed)
	r.GET("/search", h.SearchGigs)
	r.GET("/recent", h.GetRecentGigs)
}

// GetHomeFeed returns the interleaved city feed.
func (h *UserHandler) GetHomeFeed(c *gin.Context) {
	city := c.Query("city")
	page := h.QueryInt(c, "page", 1)

	feed, err := h.listings.GetHomeFeed(city, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   feed,
	})
}

func (h *UserHandler) SearchGigs(c *gin.Context) {
	var query dto.SearchGigsQuery
	if !h.BindQuery(c, &query) {
		return
	}

	results, err := h.listings.SearchGigs(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   results,
	})
}

func (h *UserHandler) GetRecentGigs(c *gin.Context) {
	page := h.QueryInt(c, "page", 1)

	results, err := h.listings.GetRecentGigs(page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   results,
	})
}
