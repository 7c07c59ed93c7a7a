package check

import "reflect"

// Nil reports whether value is nil: either an untyped nil interface or a nil
// pointer, map, slice, channel, function, or unsafe pointer boxed in the
// interface. Non-nilable kinds always report false.
func Nil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// SpecificType reports whether the dynamic type of value is exactly T.
// Assignability and interface satisfaction do not count: a value whose type
// merely implements an interface T, or shares T's underlying type, fails
// this check. An untyped nil has no dynamic type and always fails.
func SpecificType[T any](value any) bool {
	return reflect.TypeOf(value) == reflect.TypeFor[T]()
}

// Instance reports whether value can be used as a T: its dynamic type either
// is T or is assignable to T. For an interface T this means the value
// implements it. For a concrete defined T only T itself and unnamed types
// sharing T's underlying type qualify; a defined type is not an instance of
// its underlying type, since converting between two defined types requires an
// explicit conversion. An untyped nil is an instance of nothing.
func Instance[T any](value any) bool {
	rt := reflect.TypeOf(value)
	if rt == nil {
		return false
	}
	return rt.AssignableTo(reflect.TypeFor[T]())
}
