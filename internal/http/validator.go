package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("notblank", validateNotBlank)
}

// notblank rejects strings that are empty or whitespace-only; the
// plain "required" tag lets "   " through.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var out []ValidationError
	for _, fieldErr := range err.(validator.ValidationErrors) {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: fieldErr.Tag(),
		})
	}
	return out
}
