package validate

import (
	"reflect"

	"github.com/dmitrymomot/onecondition/check"
)

// Nil validates that value is nil.
func Nil(value any) error {
	if !check.Nil(value) {
		return NewValidationError("Value '%v' must be nil", value)
	}
	return nil
}

// NotNil validates that value is not nil.
func NotNil(value any) error {
	if check.Nil(value) {
		return NewValidationError("Value must not be nil")
	}
	return nil
}

// SpecificType validates that the dynamic type of value is exactly T,
// ignoring assignability and interface satisfaction.
func SpecificType[T any](value any) error {
	if !check.SpecificType[T](value) {
		return NewValidationError("Value '%v' must be of type %v, not %v",
			value, reflect.TypeFor[T](), reflect.TypeOf(value))
	}
	return nil
}

// NotSpecificType validates that the dynamic type of value is not exactly T.
func NotSpecificType[T any](value any) error {
	if check.SpecificType[T](value) {
		return NewValidationError("Value '%v' must be not of type %v",
			value, reflect.TypeFor[T]())
	}
	return nil
}

// Instance validates that value can be used as a T: its dynamic type is T or
// is assignable to T (for an interface T, implements it).
func Instance[T any](value any) error {
	if !check.Instance[T](value) {
		return NewValidationError("Value '%v' must be an instance of %v, not a %v",
			value, reflect.TypeFor[T](), reflect.TypeOf(value))
	}
	return nil
}

// NotInstance validates that value cannot be used as a T.
func NotInstance[T any](value any) error {
	if check.Instance[T](value) {
		return NewValidationError("Value '%v' must not be an instance of %v",
			value, reflect.TypeFor[T]())
	}
	return nil
}
