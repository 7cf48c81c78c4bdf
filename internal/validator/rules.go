package validator

import (
	"log"

	"worklink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum rules used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-skill-category", validateSkillCategory)
}

func validateSkillCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// Emptiness is the job of 'required'
		return true
	}
	return models.SkillCategory(value).Valid()
}
