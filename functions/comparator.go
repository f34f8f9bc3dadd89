package functions

import (
	"cmp"

	"github.com/n0rdy/fallible/types"
)

// Comparator is a function that compares two inputs and returns either a negative number, zero or a positive number
// (the first input is less than, equal to or greater than the second one), or a failure of type E.
//
// Whether a Comparator represents a total or a partial ordering is carried by its failure type only:
// a Comparator with the [types.Never] failure type can't fail for any pair of inputs and thus is a total ordering,
// while any other failure type signals that some pairs can't be compared.
// Use [NaturalOrder] and [FromCmp] to build total orderings.
type Comparator[I any, E types.Failure] func(a, b I) (int, E)

// Compare runs the comparator.
func (c Comparator[I, E]) Compare(a, b I) (int, E) {
	return c(a, b)
}

// ThenComparing returns a lexicographic comparator: c is evaluated first, and other is evaluated only if c returns zero.
// A failure of either of them aborts the comparison.
func (c Comparator[I, E]) ThenComparing(other Comparator[I, E]) Comparator[I, E] {
	return func(a, b I) (int, E) {
		res, err := c(a, b)
		if types.Failed(err) || res != 0 {
			return res, err
		}
		return other(a, b)
	}
}

// Reversed returns a comparator that imposes the reverse ordering of c.
func (c Comparator[I, E]) Reversed() Comparator[I, E] {
	return func(a, b I) (int, E) {
		return c(b, a)
	}
}

// Comparing derives a comparator from a key extractor: the keys of both inputs are extracted (the first input first)
// and compared by their natural order.
// If the key extraction fails, the comparison fails with the same failure before any ordering is attempted.
func Comparing[I any, K cmp.Ordered, E types.Failure](keyExtractor Function[I, K, E]) Comparator[I, E] {
	return func(a, b I) (int, E) {
		keyA, err := keyExtractor(a)
		if types.Failed(err) {
			return 0, err
		}
		keyB, err := keyExtractor(b)
		if types.Failed(err) {
			return 0, err
		}
		return cmp.Compare(keyA, keyB), err
	}
}

// ComparingBy is like [Comparing], but compares the extracted keys with keyOrder instead of their natural order.
func ComparingBy[I, K any, E types.Failure](keyExtractor Function[I, K, E], keyOrder Comparator[K, E]) Comparator[I, E] {
	return func(a, b I) (int, E) {
		keyA, err := keyExtractor(a)
		if types.Failed(err) {
			return 0, err
		}
		keyB, err := keyExtractor(b)
		if types.Failed(err) {
			return 0, err
		}
		return keyOrder(keyA, keyB)
	}
}

// NaturalOrder returns the total ordering of an ordered type, as defined by [cmp.Compare].
func NaturalOrder[T cmp.Ordered]() Comparator[T, types.Never] {
	return func(a, b T) (int, types.Never) {
		return cmp.Compare(a, b), nil
	}
}

// FromCmp converts a regular comparison function (e.g. the one accepted by slices.SortFunc) into a total ordering.
func FromCmp[I any](f func(a, b I) int) Comparator[I, types.Never] {
	return func(a, b I) (int, types.Never) {
		return f(a, b), nil
	}
}

// CmpFunc converts a total ordering back into a regular comparison function, e.g. for slices.SortFunc.
func CmpFunc[I any](c Comparator[I, types.Never]) func(a, b I) int {
	return func(a, b I) int {
		res, _ := c(a, b)
		return res
	}
}

// LiftComparator widens the failure type of a total ordering to E.
func LiftComparator[E types.Failure, I any](c Comparator[I, types.Never]) Comparator[I, E] {
	return func(a, b I) (int, E) {
		res, _ := c(a, b)
		var zero E
		return res, zero
	}
}
