package utils

import (
	"bpa-panel-service/internal/app/models"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate        *validator.Validate
	countryCodeExpr = regexp.MustCompile(`^[A-Za-z]{2}$`)
	contextKeyExpr  = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("country_code", validateCountryCode)
	validate.RegisterValidation("context_key", validateContextKey)
	validate.RegisterValidation("panel_key", validatePanelKey)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return countryCodeExpr.MatchString(fl.Field().String())
}

func validateContextKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return contextKeyExpr.MatchString(value)
}

func validatePanelKey(fl validator.FieldLevel) bool {
	_, ok := models.ParsePanelKey(fl.Field().String())
	return ok
}
