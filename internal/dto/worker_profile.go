package dto

import (
	"time"

	"worklink_backend/internal/models"
)

type CreateWorkerProfileRequest struct {
	Phone           string `json:"phone" validate:"required"`
	SkillCategory   string `json:"skillCategory" validate:"required"`
	Country         string `json:"country" validate:"required"`
	City            string `json:"city" validate:"required"`
	ExperienceYears int    `json:"experienceYears" validate:"gte=0"`
	Cnic            string `json:"cnic" validate:"required"`
}

// UpdateWorkerProfileRequest is an explicit patch: nil means "leave as is".
type UpdateWorkerProfileRequest struct {
	Phone           *string `json:"phone"`
	SkillCategory   *string `json:"skillCategory"`
	Country         *string `json:"country"`
	City            *string `json:"city"`
	ExperienceYears *int    `json:"experienceYears"`
	Cnic            *string `json:"cnic"`
}

// Updates builds the column map for the fields actually supplied.
func (r *UpdateWorkerProfileRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.SkillCategory != nil {
		updates["skill_category"] = *r.SkillCategory
	}
	if r.Country != nil {
		updates["country"] = *r.Country
	}
	if r.City != nil {
		updates["city"] = *r.City
	}
	if r.ExperienceYears != nil {
		updates["experience_years"] = *r.ExperienceYears
	}
	if r.Cnic != nil {
		updates["cnic"] = *r.Cnic
	}
	return updates
}

// UserSummary is the projected owner attached to profile responses.
type UserSummary struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role,omitempty"`
}

type WorkerProfileResponse struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	Phone           string               `json:"phone"`
	SkillCategory   models.SkillCategory `json:"skillCategory"`
	Country         string               `json:"country"`
	City            string               `json:"city"`
	ExperienceYears int                  `json:"experienceYears"`
	Cnic            string               `json:"cnic"`
	Status          models.WorkerStatus  `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
	User            *UserSummary         `json:"user,omitempty"`
	Gigs            []models.Gig         `json:"gigs,omitempty"`
}

// NewWorkerProfileResponse projects a profile row. includeRole controls
// whether the user summary carries the role (create/update responses do,
// the public lookup does not).
func NewWorkerProfileResponse(profile *models.WorkerProfile, includeRole bool) *WorkerProfileResponse {
	resp := &WorkerProfileResponse{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Phone:           profile.Phone,
		SkillCategory:   profile.SkillCategory,
		Country:         profile.Country,
		City:            profile.City,
		ExperienceYears: profile.ExperienceYears,
		Cnic:            profile.Cnic,
		Status:          profile.Status,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
		Gigs:            profile.Gigs,
	}
	if profile.User != nil {
		resp.User = &UserSummary{
			ID:    profile.User.ID,
			Name:  profile.User.Name,
			Email: profile.User.Email,
		}
		if includeRole {
			resp.User.Role = profile.User.Role
		}
	}
	return resp
}
