package service

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

// invalidReference reports a write that points at a record which does not exist.
func invalidReference(field string, id uint) validation.Errors {
	return validation.Errors{
		field: fmt.Errorf("invalid pk \"%d\" - object does not exist", id),
	}
}

func fieldError(field string, err error) validation.Errors {
	return validation.Errors{field: err}
}

// IsValidationError reports whether err carries per-field validation failures.
func IsValidationError(err error) bool {
	var vErrs validation.Errors
	return errors.As(err, &vErrs)
}
