package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct fields against their validate tags and returns
// a field to rule map of violations, nil when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	violations := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		violations[fieldErr.Field()] = fieldErr.Tag()
	}
	return violations
}
