// Package validate enforces the predicates from the companion check package,
// turning each false answer into a descriptive error.
//
// Every predicate P in check has two first-class validators here: the
// positive form and its negation (Nil/NotNil, Zero/NotZero, Eq/Neq, and so
// on). Each carries its own failure message rather than being a call-site
// negation of the other. A validator returns nil exactly when the underlying
// predicate is true, and a *ValidationError otherwise — the duality holds
// for every pair by construction, since validators always delegate the
// decision to check and only add message formatting.
//
// # Error Handling
//
// All failures are *ValidationError values that unwrap to the
// ErrInvalidValue sentinel, so callers can match the whole category with
// errors.Is or recover the concrete type with errors.As:
//
//	if err := validate.RangeInclusive(rate, 0, 1); err != nil {
//	    if errors.Is(err, validate.ErrInvalidValue) {
//	        // rejected input, not an infrastructure failure
//	    }
//	}
//
// The package never logs, never retries, and never retains the values it is
// given; a failure is constructed fresh per call and returned immediately.
// Failure messages render the offending value first followed by the expected
// condition (for type checks, the expected and actual types; for range
// checks, the bounds) and are stable enough to assert on.
//
// All validators are stateless and goroutine-safe.
package validate
