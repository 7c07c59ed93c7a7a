package check

// Eq reports whether first and second are equal.
func Eq[T Numeric](first, second T) bool {
	return first == second
}

// Gt reports whether first is strictly greater than second.
func Gt[T Numeric](first, second T) bool {
	return first > second
}

// Gte reports whether first is greater than or equal to second.
func Gte[T Numeric](first, second T) bool {
	return first >= second
}

// Lt reports whether first is strictly less than second.
func Lt[T Numeric](first, second T) bool {
	return first < second
}

// Lte reports whether first is less than or equal to second.
func Lte[T Numeric](first, second T) bool {
	return first <= second
}
