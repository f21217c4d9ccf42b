package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection is returned when sorting in a direction other than Asc or Desc.
	ErrInvalidDirection = errors.New("invalid sort direction")

	// ErrInvalidField is returned for field names outside the accessor table,
	// either in strict mode or by Item.Set.
	ErrInvalidField = errors.New("invalid field")

	// ErrTypeMismatch is returned by Item.Set when a value has the wrong basic type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// FieldError attaches the offending field name to an error.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
