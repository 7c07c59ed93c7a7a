// Package check provides pure boolean predicates over scalar values: nil
// checks, runtime type identity, sign and range tests, and pairwise numeric
// comparisons.
//
// Every function in this package answers a yes/no question and nothing else.
// Predicates never return errors, never panic on valid inputs, and never
// mutate or retain their arguments; there is no hidden state, so the package
// is completely stateless and goroutine-safe. The companion validate package
// pairs each predicate with a validator that turns a false answer into a
// descriptive error.
//
// # Architecture
//
// Predicates are grouped one file per value family: identity.go (nil and
// runtime type checks), numeric.go (sign and range tests), compare.go
// (pairwise comparisons). Numeric helpers are generic over the Numeric
// constraint, which covers every built-in integer and float kind including
// named types.
//
// # NaN Semantics
//
// All numeric predicates use Go's native IEEE-754 comparison operators, so
// every comparison involving NaN is false. Concretely: Eq(NaN, NaN),
// Zero(NaN), Positive(NaN), Negative(NaN), and both range predicates with a
// NaN value or bound all report false. The rule is uniform; no predicate
// special-cases NaN.
//
// # Usage
//
//	if check.Positive(balance) && check.RangeInclusive(rate, 0, 1) {
//	    // proceed
//	}
//
//	if !check.Instance[io.Reader](src) {
//	    // src cannot be used as a reader
//	}
package check
