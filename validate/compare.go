package validate

import "github.com/dmitrymomot/onecondition/check"

// Eq validates that first and second are equal.
func Eq[T check.Numeric](first, second T) error {
	if !check.Eq(first, second) {
		return NewValidationError("Value '%v' must be equal to '%v'", first, second)
	}
	return nil
}

// Neq validates that first and second are not equal.
func Neq[T check.Numeric](first, second T) error {
	if check.Eq(first, second) {
		return NewValidationError("Value '%v' must not be equal to '%v'", first, second)
	}
	return nil
}

// Gt validates that first is strictly greater than second.
func Gt[T check.Numeric](first, second T) error {
	if !check.Gt(first, second) {
		return NewValidationError("Value '%v' must be greater than '%v'", first, second)
	}
	return nil
}

// Gte validates that first is greater than or equal to second.
func Gte[T check.Numeric](first, second T) error {
	if !check.Gte(first, second) {
		return NewValidationError("Value '%v' must be greater than or equal to '%v'", first, second)
	}
	return nil
}

// Lt validates that first is strictly less than second.
func Lt[T check.Numeric](first, second T) error {
	if !check.Lt(first, second) {
		return NewValidationError("Value '%v' must be less than '%v'", first, second)
	}
	return nil
}

// Lte validates that first is less than or equal to second.
func Lte[T check.Numeric](first, second T) error {
	if !check.Lte(first, second) {
		return NewValidationError("Value '%v' must be less than or equal to '%v'", first, second)
	}
	return nil
}
