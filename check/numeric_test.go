package check_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/onecondition/check"
)

func TestZero(t *testing.T) {
	t.Parallel()
	t.Run("true for zero int", func(t *testing.T) {
		assert.True(t, check.Zero(0))
	})

	t.Run("true for zero float64", func(t *testing.T) {
		assert.True(t, check.Zero(0.0))
	})

	t.Run("true for negative zero float", func(t *testing.T) {
		assert.True(t, check.Zero(math.Copysign(0, -1)))
	})

	t.Run("true for zero uint", func(t *testing.T) {
		assert.True(t, check.Zero(uint(0)))
	})

	t.Run("false for positive value", func(t *testing.T) {
		assert.False(t, check.Zero(42))
	})

	t.Run("false for negative value", func(t *testing.T) {
		assert.False(t, check.Zero(-123.45))
	})

	t.Run("false for NaN", func(t *testing.T) {
		assert.False(t, check.Zero(math.NaN()))
	})
}

func TestPositive(t *testing.T) {
	t.Parallel()
	t.Run("true for positive int", func(t *testing.T) {
		assert.True(t, check.Positive(42))
	})

	t.Run("true for small positive float", func(t *testing.T) {
		assert.True(t, check.Positive(0.001))
	})

	t.Run("false for zero", func(t *testing.T) {
		assert.False(t, check.Positive(0))
	})

	t.Run("false for negative value", func(t *testing.T) {
		assert.False(t, check.Positive(-1))
	})

	t.Run("false for NaN", func(t *testing.T) {
		assert.False(t, check.Positive(math.NaN()))
	})

	t.Run("true for positive infinity", func(t *testing.T) {
		assert.True(t, check.Positive(math.Inf(1)))
	})
}

func TestNegative(t *testing.T) {
	t.Parallel()
	t.Run("true for negative int", func(t *testing.T) {
		assert.True(t, check.Negative(-42))
	})

	t.Run("true for negative float", func(t *testing.T) {
		assert.True(t, check.Negative(-123.45))
	})

	t.Run("false for zero", func(t *testing.T) {
		assert.False(t, check.Negative(0))
	})

	t.Run("false for positive value", func(t *testing.T) {
		assert.False(t, check.Negative(1))
	})

	t.Run("false for NaN", func(t *testing.T) {
		assert.False(t, check.Negative(math.NaN()))
	})

	t.Run("true for negative infinity", func(t *testing.T) {
		assert.True(t, check.Negative(math.Inf(-1)))
	})
}

func TestRangeInclusive(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		value, min, max float64
		want            bool
	}{
		{"inside range", 0.5, 0, 1, true},
		{"at lower bound", 0, 0, 1, true},
		{"at upper bound", 1, 0, 1, true},
		{"below range", -0.1, 0, 1, false},
		{"above range", 2, 0, 1, false},
		{"single-point range hit", 5, 5, 5, true},
		{"single-point range miss", 4, 5, 5, false},
		{"inverted range is vacuously false", 0.5, 1, 0, false},
		{"NaN value", math.NaN(), 0, 1, false},
		{"NaN bound", 0.5, math.NaN(), 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check.RangeInclusive(tt.value, tt.min, tt.max))
		})
	}
}

func TestRangeNonInclusive(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		value, min, max float64
		want            bool
	}{
		{"inside range", 0.5, 0, 1, true},
		{"at lower bound", 0, 0, 1, false},
		{"at upper bound", 1, 0, 1, false},
		{"below range", -1, 0, 1, false},
		{"above range", 2, 0, 1, false},
		{"single-point range is empty", 5, 5, 5, false},
		{"inverted range is vacuously false", 0.5, 1, 0, false},
		{"NaN value", math.NaN(), 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check.RangeNonInclusive(tt.value, tt.min, tt.max))
		})
	}
}

func TestRangeBoundaryRelation(t *testing.T) {
	t.Parallel()
	// The two range predicates differ exactly at the boundaries.
	for _, v := range []int{0, 1} {
		assert.True(t, check.RangeInclusive(v, 0, 1))
		assert.False(t, check.RangeNonInclusive(v, 0, 1))
	}
}
