package handlers

import (
	"net/http"

	"worklink_backend/internal/auth"
	"worklink_backend/internal/dto"
	"worklink_backend/internal/middleware"
	"worklink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// WorkerGigHandler serves a worker's own gigs. All routes require an
// authenticated principal; ownership is enforced in the queries below.
type WorkerGigHandler struct {
	*BaseHandler
	gigs          services.WorkerGigService
	authenticator auth.Authenticator
}

func NewWorkerGigHandler(base *BaseHandler, gigs services.WorkerGigService, authenticator auth.Authenticator) *WorkerGigHandler {
	return &WorkerGigHandler{
		BaseHandler:   base,
		gigs:          gigs,
		authenticator: authenticator,
	}
}

func (h *WorkerGigHandler) RegisterRoutes(r *gin.RouterGroup) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(h.authenticator))
	{
		authed.GET("/gigs", h.ListGigs)
		authed.GET("/gig/:gigId", h.GetGig)
		authed.POST("/gig", h.CreateGig)
		authed.PUT("/gig/:gigId", h.UpdateGig)
		authed.DELETE("/gig/:gigId", h.DeleteGig)
	}
}

func (h *WorkerGigHandler) ListGigs(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	gigs, err := h.gigs.List(principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gigs,
	})
}

func (h *WorkerGigHandler) GetGig(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	gig, err := h.gigs.GetByID(principal, c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gig,
	})
}

func (h *WorkerGigHandler) CreateGig(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	gig, err := h.gigs.Create(principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Gig created successfully",
		"data":    gig,
	})
}

func (h *WorkerGigHandler) UpdateGig(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.gigs.Update(principal, c.Param("gigId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gig updated successfully",
	})
}

func (h *WorkerGigHandler) DeleteGig(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	if err := h.gigs.Delete(principal, c.Param("gigId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gig deleted successfully",
	})
}
