package types

// Failure is a type constraint for the failure type parameter carried by every fallible abstraction of this module.
//
// Any comparable error type qualifies: pointers to custom error structs, comparable error structs,
// the plain error interface, or [Never].
// A call is considered failed if and only if the returned failure is different from the zero value of its type,
// see [Failed] for details.
//
// Please, note that with the plain error interface as a failure type, the usual Go gotcha applies:
// a typed nil pointer stored in the error interface is not nil, and thus counts as a failure.
type Failure interface {
	comparable
	error
}

// Never is a failure type that can never occur.
//
// It is a pointer to an unexported type that is never instantiated, which leaves nil as its only value.
// A function declaring Never as its failure type is therefore statically known to be infallible:
// use it to mark total operations and total orderings.
//
// Functions with Never as a failure type can be combined with fallible ones by lifting them,
// see the Lift* functions of the [functions] package.
type Never = *never

type never struct{}

func (*never) Error() string {
	return "never"
}

// Failed reports whether the provided failure value represents an actual failure,
// i.e. whether it differs from the zero value of its type.
func Failed[E Failure](e E) bool {
	var zero E
	return e != zero
}
