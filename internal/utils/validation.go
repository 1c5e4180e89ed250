package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct validates a struct using its validate tags.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FormatValidationError turns validator errors into a single readable message.
func FormatValidationError(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request body"
	}

	parts := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := strings.ToLower(e.Field()[:1]) + e.Field()[1:]
		switch e.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", field))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s characters", field, e.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s characters", field, e.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}

	return strings.Join(parts, "; ")
}
