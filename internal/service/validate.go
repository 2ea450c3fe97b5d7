package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "gte":
		return "Must be zero or greater."
	case "gt":
		return "Must be greater than zero."
	default:
		return "Invalid value."
	}
}

// toValidationError converts validator output into the form-facing error type.
// Field names are lowercased struct field names, matching form input names.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	fields := make(map[string]string, len(ves))
	for _, fe := range ves {
		fields[strings.ToLower(fe.StructField())] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}
