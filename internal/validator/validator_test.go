package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"omitempty,is-skill-category"`
	Years    int    `json:"years" validate:"gte=0"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&sampleRequest{Email: "not-an-email", Years: -1})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "this field is required", vErr.Errors["name"])
	assert.Equal(t, "must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "must be greater than or equal to 0", vErr.Errors["years"])
}

func TestValidate_SkillCategoryRule(t *testing.T) {
	t.Parallel()

	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{
		Name: "Ali", Email: "ali@email.com", Category: "PLUMBING",
	}))

	err := v.Validate(&sampleRequest{
		Name: "Ali", Email: "ali@email.com", Category: "WELDING",
	})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is not a valid skill category", vErr.Errors["category"])
}

func TestValidate_EmptyCategoryIsLeftToRequired(t *testing.T) {
	t.Parallel()

	v := New()
	assert.NoError(t, v.Validate(&sampleRequest{Name: "Ali", Email: "ali@email.com"}))
}
