package functions

import (
	"github.com/n0rdy/fallible/types"
)

// Function is a function that takes an input and returns either an output or a failure of type E.
// The fallible use-case for it is to transform the object of one type into another type within the [transform.Map] stage,
// while keeping the type of the possible failure visible in the signature.
//
// The call is considered failed if the returned failure differs from the zero value of E, see [types.Failed].
// A Function that can't fail declares [types.Never] as its failure type.
type Function[I, O any, E types.Failure] func(I) (O, E)

// Applier is the capability shared by [Function] and [Predicate]: something that maps an input to either an output or a failure.
type Applier[I, O any, E types.Failure] interface {
	Apply(input I) (O, E)
}

// Apply runs the function.
func (f Function[I, O, E]) Apply(input I) (O, E) {
	return f(input)
}

// AndThen returns a [Function] that runs f and then feeds its output to next.
// If f fails, next is never invoked and the failure of f is returned as is.
func AndThen[I, O, O2 any, E types.Failure](f Function[I, O, E], next Function[O, O2, E]) Function[I, O2, E] {
	return func(input I) (O2, E) {
		intermediate, err := f(input)
		if types.Failed(err) {
			var zero O2
			return zero, err
		}
		return next(intermediate)
	}
}

// Compose returns a [Function] that runs prev and then feeds its output to f.
// It is the mirror image of [AndThen]: Compose(f, prev) is equivalent to AndThen(prev, f).
func Compose[I2, I, O any, E types.Failure](f Function[I, O, E], prev Function[I2, I, E]) Function[I2, O, E] {
	return AndThen(prev, f)
}

// Identity returns a [Function] that returns its input unchanged and can never fail.
func Identity[T any]() Function[T, T, types.Never] {
	return func(input T) (T, types.Never) {
		return input, nil
	}
}

// From converts a total function into a [Function] that can never fail.
func From[I, O any](f func(I) O) Function[I, O, types.Never] {
	return func(input I) (O, types.Never) {
		return f(input), nil
	}
}

// FromErr converts a regular Go function returning (value, error) into a [Function] with the plain error failure type.
func FromErr[I, O any](f func(I) (O, error)) Function[I, O, error] {
	return Function[I, O, error](f)
}

// LiftFunction widens the failure type of a [Function] that can never fail to E,
// so that it can be composed with the functions that fail with E.
//
// E comes first, so the input and output types are inferred:
//
//	trim := functions.LiftFunction[*ParseError](functions.From(strings.TrimSpace))
func LiftFunction[E types.Failure, I, O any](f Function[I, O, types.Never]) Function[I, O, E] {
	return func(input I) (O, E) {
		out, _ := f(input)
		var zero E
		return out, zero
	}
}

// EraseFunction widens the failure type of a [Function] to the plain error interface.
// A successful call yields an untyped nil error, even if the original failure type is a pointer.
func EraseFunction[I, O any, E types.Failure](f Function[I, O, E]) Function[I, O, error] {
	return func(input I) (O, error) {
		out, err := f(input)
		if types.Failed(err) {
			return out, err
		}
		return out, nil
	}
}
