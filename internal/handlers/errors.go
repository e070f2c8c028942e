package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// validationFields turns binding failures into per-field messages for form
// re-rendering on the client.
func validationFields(err error) map[string]string {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fields
	}
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "this field is required"
		case "email":
			fields[name] = "enter a valid email address"
		case "eqfield":
			fields[name] = "passwords do not match"
		case "min":
			fields[name] = "value is too short"
		case "max":
			fields[name] = "value is too long"
		default:
			fields[name] = "invalid value"
		}
	}
	return fields
}
