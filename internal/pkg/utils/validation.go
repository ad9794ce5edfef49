package utils

import (
	"regexp"

	"intake-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("contact", validateContactNumber)
	validate.RegisterValidation("severity", validateSeverity)
	validate.RegisterValidation("allergy_type", validateAllergyType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Registration accepts bare national numbers as typed at the desk, with an
// optional leading +country code.
func validateContactNumber(fl validator.FieldLevel) bool {
	contactNumber := fl.Field().String()
	re := regexp.MustCompile(`^\+?[0-9]{5,15}$`)
	return re.MatchString(contactNumber)
}

func validateSeverity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" ||
		value == constvars.ComplaintSeverityMild ||
		value == constvars.ComplaintSeverityModerate ||
		value == constvars.ComplaintSeveritySevere
}

func validateAllergyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AllergyTypeDrug ||
		value == constvars.AllergyTypeFood ||
		value == constvars.AllergyTypeOther
}
