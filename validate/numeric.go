package validate

import "github.com/dmitrymomot/onecondition/check"

// Zero validates that value is exactly equal to zero.
func Zero[T check.Numeric](value T) error {
	if !check.Zero(value) {
		return NewValidationError("Value '%v' must be zero", value)
	}
	return nil
}

// NotZero validates that value is not exactly equal to zero.
func NotZero[T check.Numeric](value T) error {
	if check.Zero(value) {
		return NewValidationError("Value '%v' must not be zero", value)
	}
	return nil
}

// Positive validates that value is strictly greater than zero.
func Positive[T check.Numeric](value T) error {
	if !check.Positive(value) {
		return NewValidationError("Value '%v' must be positive (non-zero)", value)
	}
	return nil
}

// NotPositive validates that value is not strictly greater than zero.
func NotPositive[T check.Numeric](value T) error {
	if check.Positive(value) {
		return NewValidationError("Value '%v' must not be positive (non-zero)", value)
	}
	return nil
}

// Negative validates that value is strictly less than zero.
func Negative[T check.Numeric](value T) error {
	if !check.Negative(value) {
		return NewValidationError("Value '%v' must be negative (non-zero)", value)
	}
	return nil
}

// NotNegative validates that value is not strictly less than zero.
func NotNegative[T check.Numeric](value T) error {
	if check.Negative(value) {
		return NewValidationError("Value '%v' must not be negative (non-zero)", value)
	}
	return nil
}

// RangeInclusive validates that min <= value <= max.
func RangeInclusive[T check.Numeric](value, min, max T) error {
	if !check.RangeInclusive(value, min, max) {
		return NewValidationError("Value '%v' must be between %v and %v (inclusive)",
			value, min, max)
	}
	return nil
}

// NotRangeInclusive validates that value lies outside [min, max].
func NotRangeInclusive[T check.Numeric](value, min, max T) error {
	if check.RangeInclusive(value, min, max) {
		return NewValidationError("Value '%v' must not be between %v and %v (inclusive)",
			value, min, max)
	}
	return nil
}

// RangeNonInclusive validates that min < value < max, excluding both bounds.
func RangeNonInclusive[T check.Numeric](value, min, max T) error {
	if !check.RangeNonInclusive(value, min, max) {
		return NewValidationError("Value '%v' must be between %v and %v (non-inclusive)",
			value, min, max)
	}
	return nil
}

// NotRangeNonInclusive validates that value lies outside (min, max).
func NotRangeNonInclusive[T check.Numeric](value, min, max T) error {
	if check.RangeNonInclusive(value, min, max) {
		return NewValidationError("Value '%v' must not be between %v and %v (non-inclusive)",
			value, min, max)
	}
	return nil
}
