package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"isodate":  "{field} must be a date in YYYY-MM-DD format",
	"oneof":    "{field} must be one of {param}",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
}

// lengthMessages apply to string fields, where max counts characters.
var lengthMessages = map[string]string{
	"max": "{field} must be at most {param} characters",
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template := messages[valErr.Tag()]
		if valErr.Kind() == reflect.String && lengthMessages[valErr.Tag()] != "" {
			template = lengthMessages[valErr.Tag()]
		}

		if template == "" {
			continue
		}

		param := valErr.Param()
		if valErr.Tag() == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", param).Replace(template)
	}

	return valErrors.Error()
}
