package check

// Numeric is the generic constraint shared by every numeric predicate in
// this package and by the validators built on top of them. It covers all
// built-in integer and float kinds, including named types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Zero reports whether value is exactly equal to zero.
func Zero[T Numeric](value T) bool {
	return value == 0
}

// Positive reports whether value is strictly greater than zero.
func Positive[T Numeric](value T) bool {
	return value > 0
}

// Negative reports whether value is strictly less than zero.
func Negative[T Numeric](value T) bool {
	return value < 0
}

// RangeInclusive reports whether min <= value <= max. An inverted range
// (min > max) reports false for every value; the bounds themselves are
// never validated here.
func RangeInclusive[T Numeric](value, min, max T) bool {
	return min <= value && value <= max
}

// RangeNonInclusive reports whether min < value < max, excluding both
// bounds. As with RangeInclusive, an inverted range reports false.
func RangeNonInclusive[T Numeric](value, min, max T) bool {
	return min < value && value < max
}
