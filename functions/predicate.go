package functions

import (
	"github.com/n0rdy/fallible/types"
)

// Predicate is a function that takes an input and returns either a boolean or a failure of type E.
// The fallible use-case for it is to filter out the objects within the [transform.Filter] stage.
//
// A Predicate is a [Function] with a boolean output: it satisfies [Applier] and can be converted with [Predicate.AsFunction].
type Predicate[I any, E types.Failure] func(I) (bool, E)

// Test runs the predicate.
func (p Predicate[I, E]) Test(input I) (bool, E) {
	return p(input)
}

// Apply runs the predicate, see [Applier].
func (p Predicate[I, E]) Apply(input I) (bool, E) {
	return p(input)
}

// AsFunction returns the predicate as a [Function] with a boolean output.
func (p Predicate[I, E]) AsFunction() Function[I, bool, E] {
	return Function[I, bool, E](p)
}

// And returns a short-circuiting logical AND of p and other.
// other is not invoked if p returns false or fails.
func (p Predicate[I, E]) And(other Predicate[I, E]) Predicate[I, E] {
	return func(input I) (bool, E) {
		ok, err := p(input)
		if types.Failed(err) || !ok {
			return false, err
		}
		return other(input)
	}
}

// Or returns a short-circuiting logical OR of p and other.
// other is not invoked if p returns true or fails.
func (p Predicate[I, E]) Or(other Predicate[I, E]) Predicate[I, E] {
	return func(input I) (bool, E) {
		ok, err := p(input)
		if types.Failed(err) {
			return false, err
		}
		if ok {
			return true, err
		}
		return other(input)
	}
}

// Negate returns a predicate with the opposite result. Failures are returned unchanged.
func (p Predicate[I, E]) Negate() Predicate[I, E] {
	return func(input I) (bool, E) {
		ok, err := p(input)
		if types.Failed(err) {
			return false, err
		}
		return !ok, err
	}
}

// IsEqual returns a predicate that checks whether its input equals target.
func IsEqual[I comparable](target I) Predicate[I, types.Never] {
	return func(input I) (bool, types.Never) {
		return input == target, nil
	}
}

// FromPredicate converts a plain boolean function into a [Predicate] that can never fail.
func FromPredicate[I any](f func(I) bool) Predicate[I, types.Never] {
	return func(input I) (bool, types.Never) {
		return f(input), nil
	}
}

// LiftPredicate widens the failure type of a [Predicate] that can never fail to E.
func LiftPredicate[E types.Failure, I any](p Predicate[I, types.Never]) Predicate[I, E] {
	return func(input I) (bool, E) {
		ok, _ := p(input)
		var zero E
		return ok, zero
	}
}

// ErasePredicate widens the failure type of a [Predicate] to the plain error interface.
func ErasePredicate[I any, E types.Failure](p Predicate[I, E]) Predicate[I, error] {
	return func(input I) (bool, error) {
		ok, err := p(input)
		if types.Failed(err) {
			return false, err
		}
		return ok, nil
	}
}
