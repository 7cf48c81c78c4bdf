package handlers

import (
	"net/http"

	"worklink_backend/internal/dto"
	"worklink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type WorkerProfileHandler struct {
	*BaseHandler
	profiles services.WorkerProfileService
}

func NewWorkerProfileHandler(base *BaseHandler, profiles services.WorkerProfileService) *WorkerProfileHandler {
	return &WorkerProfileHandler{
		BaseHandler: base,
		profiles:    profiles,
	}
}

func (h *WorkerProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profile/:workerId", h.GetProfile)
	r.POST("/profile/:userId", h.CreateProfile)
	r.PUT("/profile/:userId", h.UpdateProfile)
}

// GetProfile looks a profile up by its id. The route parameter wins over
// the userId query fallback.
func (h *WorkerProfileHandler) GetProfile(c *gin.Context) {
	lookupKey := c.Param("workerId")
	if lookupKey == "" {
		lookupKey = c.Query("userId")
	}

	profile, err := h.profiles.Get(lookupKey)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

func (h *WorkerProfileHandler) CreateProfile(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.CreateWorkerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profiles.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Worker profile created successfully",
		"data":    profile,
	})
}

func (h *WorkerProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.UpdateWorkerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profiles.Update(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Worker profile updated successfully",
		"data":    profile,
	})
}
