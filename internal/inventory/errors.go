package inventory

import (
	"errors"
	"fmt"

	"go-inventory-tracker/pkg/validator"
)

// ValidationError reports bad or missing input to a mutating operation.
type ValidationError struct {
	Field string // JSON field name
	Rule  string // failed rule, e.g. "gte=0" or "unique"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field '%s' failed on '%s'", e.Field, e.Rule)
}

// NotFoundError reports an operation that referenced a record that does not exist.
// Products referenced by name set Name instead of ID.
type NotFoundError struct {
	Entity string
	ID     int
	Name   string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// validateInput runs the struct tags of in and converts the first failure.
func validateInput(in interface{}) error {
	errs := validator.ValidateStruct(in)
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	rule := first.Tag
	if first.Value != "" {
		rule += "=" + first.Value
	}
	return &ValidationError{Field: first.Field, Rule: rule}
}
