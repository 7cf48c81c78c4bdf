package handlers

import (
	"net/http"
	"testing"

	"worklink_backend/internal/apperrors"
	"worklink_backend/internal/auth"
	"worklink_backend/internal/dto"
	"worklink_backend/internal/mocks"
	"worklink_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newGigRouter(gigs *mocks.WorkerGigService, authenticator auth.Authenticator) *gin.Engine {
	if authenticator == nil {
		authenticator = &auth.StaticAuthenticator{Principal: testPrincipal()}
	}
	router := gin.New()
	handler := NewWorkerGigHandler(newBase(), gigs, authenticator)
	handler.RegisterRoutes(router.Group("/api/worker"))
	return router
}

func gigBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Kitchen sink repair",
		"description": "Fix leaking pipes.",
		"price":       1500,
		"category":    "PLUMBING",
		"city":        "Lahore",
		"address":     "Gulberg III",
	}
}

func TestListGigs_OK(t *testing.T) {
	owned := make([]models.Gig, 2)
	owned[0].ID = "g1"
	owned[1].ID = "g2"

	gigs := new(mocks.WorkerGigService)
	gigs.On("List", mock.MatchedBy(func(p *auth.Principal) bool {
		return p.UserID == "user-1"
	})).Return(owned, nil)

	rec := perform(newGigRouter(gigs, nil), http.MethodGet, "/api/worker/gigs", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, true, payload["success"])
	assert.Len(t, payload["data"], 2)
	gigs.AssertExpectations(t)
}

func TestGigRoutes_RequireAuth(t *testing.T) {
	gigs := new(mocks.WorkerGigService)
	router := newGigRouter(gigs, &auth.TokenAuthenticator{Secret: "secret"})

	rec := perform(router, http.MethodGet, "/api/worker/gigs", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	gigs.AssertNotCalled(t, "List", mock.Anything)
}

func TestGetGig_NotFoundIs404(t *testing.T) {
	gigs := new(mocks.WorkerGigService)
	gigs.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.ErrGigNotFound)

	rec := perform(newGigRouter(gigs, nil), http.MethodGet, "/api/worker/gig/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Gig not found", payload["error"].(map[string]interface{})["message"])
}

func TestCreateGig_Created(t *testing.T) {
	created := &models.Gig{Title: "Kitchen sink repair", WorkerID: "profile-1"}
	created.ID = "gig-1"

	gigs := new(mocks.WorkerGigService)
	gigs.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateGigRequest) bool {
		return req.Title == "Kitchen sink repair" && req.Price == 1500
	})).Return(created, nil)

	rec := perform(newGigRouter(gigs, nil), http.MethodPost, "/api/worker/gig", gigBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Gig created successfully", payload["message"])
	assert.Equal(t, "gig-1", payload["data"].(map[string]interface{})["id"])
	gigs.AssertExpectations(t)
}

func TestCreateGig_UnknownCategoryIs400(t *testing.T) {
	gigs := new(mocks.WorkerGigService)

	body := gigBody()
	body["category"] = "WELDING"

	rec := perform(newGigRouter(gigs, nil), http.MethodPost, "/api/worker/gig", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	gigs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateGig_NonWorkerIs403(t *testing.T) {
	gigs := new(mocks.WorkerGigService)
	gigs.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotAWorker)

	rec := perform(newGigRouter(gigs, nil), http.MethodPost, "/api/worker/gig", gigBody())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Only workers can create gigs", payload["error"].(map[string]interface{})["message"])
}

func TestCreateGig_NoProfileIs404(t *testing.T) {
	gigs := new(mocks.WorkerGigService)
	gigs.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrProfileNotFound)

	rec := perform(newGigRouter(gigs, nil), http.MethodPost, "/api/worker/gig", gigBody())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateGig_OK(t *testing.T) {
	gigs := new(mocks.WorkerGigService)
	gigs.On("Update", mock.Anything, "gig-1", mock.MatchedBy(func(req *dto.UpdateGigRequest) bool {
		return req.Title != nil && *req.Title == "New title"
	})).Return(nil)

	rec := perform(newGigRouter(gigs, nil), http.MethodPut, "/api/worker/gig/gig-1",
		map[string]interface{}{"title": "New title"})

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Gig updated successfully", payload["message"])
	gigs.AssertExpectations(t)
}

func TestDeleteGig_OK(t *testing.T) {
	gigs := new(mocks.WorkerGigService)
	gigs.On("Delete", mock.Anything, "gig-1").Return(nil)

	rec := perform(newGigRouter(gigs, nil), http.MethodDelete, "/api/worker/gig/gig-1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Gig deleted successfully", payload["message"])
	gigs.AssertExpectations(t)
}

func TestDeleteGig_NotFoundIs404(t *testing.T) {
	gigs := new(mocks.WorkerGigService)
	gigs.On("Delete", mock.Anything, "missing").Return(apperrors.ErrGigNotFound)

	rec := perform(newGigRouter(gigs, nil), http.MethodDelete, "/api/worker/gig/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
