package scheduling

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("appointment not found")
)

// ConflictError reports the first occurrence date that was already booked
// when a commit was attempted. No appointments are created when it is
// returned.
type ConflictError struct {
	Date string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot already booked on %s", e.Date)
}
