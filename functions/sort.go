package functions

import (
	"slices"

	"github.com/n0rdy/fallible/types"
)

// sortFailure carries a comparator failure out of slices.SortFunc, which has no way to stop the sort otherwise.
// Each SortSlice call panics with its own instance, so only that instance is recovered.
type sortFailure[E types.Failure] struct {
	failure E
}

// SortSlice sorts s in place with the provided comparator, which might represent a partial ordering.
//
// If the comparator fails, the sort is abandoned at once and the failure is returned unchanged.
// In that case the order of s is unspecified, but it still holds the same elements.
// Panics raised by the comparator itself are not intercepted: they propagate with their original value.
//
// As with slices.SortFunc, the comparator must be a strict weak ordering for the pairs it doesn't fail on.
func SortSlice[I any, E types.Failure](s []I, c Comparator[I, E]) (failure E) {
	marker := &sortFailure[E]{}

	defer func() {
		if r := recover(); r != nil {
			if r != any(marker) {
				panic(r)
			}
			failure = marker.failure
		}
	}()

	slices.SortFunc(s, func(a, b I) int {
		res, err := c(a, b)
		if types.Failed(err) {
			marker.failure = err
			panic(marker)
		}
		return res
	})
	return failure
}
