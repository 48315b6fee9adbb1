package utils

import (
	"regexp"

	"pawcare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("time_24h", validateTime24h)
	validate.RegisterValidation("date_iso", validateDateISO)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTime24h(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexTime24HHMM).MatchString(fl.Field().String())
}

func validateDateISO(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(fl.Field().String())
}
