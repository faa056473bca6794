package takeoff

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports which parameter failed validation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid builds an *InvalidInputError.
func Invalid(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Positive rejects zero, negative and non-finite values.
func Positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(field, "must be a finite number")
	}
	if v <= 0 {
		return Invalid(field, "must be positive, got %g", v)
	}
	return nil
}

// NonNegative rejects negative and non-finite values.
func NonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(field, "must be a finite number")
	}
	if v < 0 {
		return Invalid(field, "must not be negative, got %g", v)
	}
	return nil
}

// Count returns n, or 1 when n is zero. Negative counts are rejected.
func Count(field string, n int) (int, error) {
	if n < 0 {
		return 0, Invalid(field, "must not be negative, got %d", n)
	}
	if n == 0 {
		return 1, nil
	}
	return n, nil
}

// Check returns the first non-nil error.
func Check(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
