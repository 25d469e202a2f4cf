package web

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func errorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "email":
		return " must be a valid email address"
	case "alphanum":
		return " must contain only letters and numbers"
	case "min":
		return " must be greater or equal to " + fe.Param()
	case "max":
		return " must be less or equal to " + fe.Param()
	case "datetime":
		return " must be a date formatted as " + fe.Param()
	case "accounttype":
		return " is not a supported account type"
	}

	return " is invalid"
}

// GetErrorMsg collects all field validation errors into a single message.
func GetErrorMsg(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))

	for _, fe := range ve {
		msgs = append(msgs, fe.Field()+errorMsg(fe))
	}

	return strings.Join(msgs, "; ")
}
