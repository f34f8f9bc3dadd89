// Package collectors provides the aggregation strategies for the aggregate.Collect terminal.
//
// A collector is infallible: the elements reaching it have already passed every stage,
// so if some per-element work can fail, it belongs to a stage (e.g. transform.Map) instead.
package collectors

import (
	"slices"
	"strings"

	"github.com/n0rdy/fallible/functions"
	"github.com/n0rdy/fallible/types"
)

// Collector describes an aggregation of the elements of type T into the result of type R
// through the mutable accumulation of type A.
//
// Supplier creates a fresh accumulation for every terminal run.
// Accumulator folds an element into the accumulation, in the source order, and returns the updated accumulation.
// Finisher converts the accumulation into the result. It is called once, and only if the run didn't fail.
type Collector[T, A, R any] struct {
	Supplier    func() A
	Accumulator func(acc A, in T) A
	Finisher    func(acc A) R
}

// ToSlice collects the elements into a slice in the source order.
// An empty run results in an empty, non-nil slice.
func ToSlice[T any]() Collector[T, []T, []T] {
	return Collector[T, []T, []T]{
		Supplier: func() []T {
			return make([]T, 0)
		},
		Accumulator: func(acc []T, in T) []T {
			return append(acc, in)
		},
		Finisher: identity[[]T],
	}
}

// Counting counts the elements.
func Counting[T any]() Collector[T, int64, int64] {
	return Collector[T, int64, int64]{
		Supplier: zero[int64],
		Accumulator: func(acc int64, _ T) int64 {
			return acc + 1
		},
		Finisher: identity[int64],
	}
}

// Summing sums the elements.
func Summing[N types.Number]() Collector[N, N, N] {
	return Collector[N, N, N]{
		Supplier: zero[N],
		Accumulator: func(acc N, in N) N {
			return acc + in
		},
		Finisher: identity[N],
	}
}

// Averaging calculates the arithmetic mean of the elements.
// An empty run results in 0.
func Averaging[N types.Number]() Collector[N, types.AggregationWithCounter[N], float64] {
	return Collector[N, types.AggregationWithCounter[N], float64]{
		Supplier: zero[types.AggregationWithCounter[N]],
		Accumulator: func(acc types.AggregationWithCounter[N], in N) types.AggregationWithCounter[N] {
			return types.AggregationWithCounter[N]{
				Aggregation: acc.Aggregation + in,
				Counter:     acc.Counter + 1,
			}
		},
		Finisher: func(acc types.AggregationWithCounter[N]) float64 {
			if acc.Counter == 0 {
				return 0
			}
			return float64(acc.Aggregation) / float64(acc.Counter)
		},
	}
}

// Reducing folds the elements with reduceFunc, starting from initial.
// An empty run results in initial.
func Reducing[T any](initial T, reduceFunc func(acc T, in T) T) Collector[T, T, T] {
	validate(reduceFunc == nil, "Reducing")

	return Collector[T, T, T]{
		Supplier: func() T {
			return initial
		},
		Accumulator: reduceFunc,
		Finisher:    identity[T],
	}
}

// GroupingBy groups the elements by the key returned by keyFunc.
// The elements of each group keep the source order.
func GroupingBy[T any, K comparable](keyFunc func(T) K) Collector[T, map[K][]T, map[K][]T] {
	validate(keyFunc == nil, "GroupingBy")

	return Collector[T, map[K][]T, map[K][]T]{
		Supplier: func() map[K][]T {
			return make(map[K][]T)
		},
		Accumulator: func(acc map[K][]T, in T) map[K][]T {
			key := keyFunc(in)
			acc[key] = append(acc[key], in)
			return acc
		},
		Finisher: identity[map[K][]T],
	}
}

// ToMap collects the elements into a map using the key-value pairs returned by mapFunc.
// If several elements produce the same key, the last one wins.
func ToMap[T any, K comparable, V any](mapFunc func(T) types.Tuple[K, V]) Collector[T, map[K]V, map[K]V] {
	validate(mapFunc == nil, "ToMap")

	return Collector[T, map[K]V, map[K]V]{
		Supplier: func() map[K]V {
			return make(map[K]V)
		},
		Accumulator: func(acc map[K]V, in T) map[K]V {
			out := mapFunc(in)
			acc[out.First] = out.Second
			return acc
		},
		Finisher: identity[map[K]V],
	}
}

// ToMultiMap collects the elements into a multimap using the key-value pairs returned by mapFunc.
// The values of each key keep the source order.
func ToMultiMap[T any, K comparable, V any](mapFunc func(T) types.Tuple[K, V]) Collector[T, map[K][]V, map[K][]V] {
	validate(mapFunc == nil, "ToMultiMap")

	return Collector[T, map[K][]V, map[K][]V]{
		Supplier: func() map[K][]V {
			return make(map[K][]V)
		},
		Accumulator: func(acc map[K][]V, in T) map[K][]V {
			out := mapFunc(in)
			acc[out.First] = append(acc[out.First], out.Second)
			return acc
		},
		Finisher: identity[map[K][]V],
	}
}

// Distinct collects the distinct elements into a slice, in the order of their first occurrence.
func Distinct[T comparable]() Collector[T, types.AggregationWithCache[T], []T] {
	return Collector[T, types.AggregationWithCache[T], []T]{
		Supplier: newCache[T],
		Accumulator: func(acc types.AggregationWithCache[T], in T) types.AggregationWithCache[T] {
			if !acc.Cache[in] {
				acc.Cache[in] = true
				acc.Aggregation = append(acc.Aggregation, in)
			}
			return acc
		},
		Finisher: func(acc types.AggregationWithCache[T]) []T {
			return acc.Aggregation
		},
	}
}

// DistinctCount counts the distinct elements.
func DistinctCount[T comparable]() Collector[T, map[T]bool, int64] {
	return Collector[T, map[T]bool, int64]{
		Supplier: func() map[T]bool {
			return make(map[T]bool)
		},
		Accumulator: func(acc map[T]bool, in T) map[T]bool {
			acc[in] = true
			return acc
		},
		Finisher: func(acc map[T]bool) int64 {
			return int64(len(acc))
		},
	}
}

// Joining concatenates the string elements, separated by sep.
func Joining(sep string) Collector[string, []string, string] {
	return Collector[string, []string, string]{
		Supplier: func() []string {
			return make([]string, 0)
		},
		Accumulator: func(acc []string, in string) []string {
			return append(acc, in)
		},
		Finisher: func(acc []string) string {
			return strings.Join(acc, sep)
		},
	}
}

// Sorted collects the elements into a slice sorted by the comparator.
// The sort is stable: the equal elements keep the source order.
//
// Only a total ordering is accepted, as the sorting happens after the run is over and can't fail anymore.
// To sort by a fallible ordering, collect the elements with [ToSlice] and call functions.SortSlice on the result.
func Sorted[T any](comparator functions.Comparator[T, types.Never]) Collector[T, []T, []T] {
	validate(comparator == nil, "Sorted")

	cmpFunc := functions.CmpFunc(comparator)
	return Collector[T, []T, []T]{
		Supplier: func() []T {
			return make([]T, 0)
		},
		Accumulator: func(acc []T, in T) []T {
			return append(acc, in)
		},
		Finisher: func(acc []T) []T {
			slices.SortStableFunc(acc, cmpFunc)
			return acc
		},
	}
}

// MaxBy finds the greatest element according to the comparator.
// If several elements are the greatest, the first one wins.
// An empty run results in nil.
func MaxBy[T any](comparator functions.Comparator[T, types.Never]) Collector[T, *T, *T] {
	validate(comparator == nil, "MaxBy")

	return best(functions.CmpFunc(comparator), func(res int) bool {
		return res > 0
	})
}

// MinBy finds the least element according to the comparator.
// If several elements are the least, the first one wins.
// An empty run results in nil.
func MinBy[T any](comparator functions.Comparator[T, types.Never]) Collector[T, *T, *T] {
	validate(comparator == nil, "MinBy")

	return best(functions.CmpFunc(comparator), func(res int) bool {
		return res < 0
	})
}

// best keeps the element that beats the current one, where beats decides on the result of cmpFunc(in, current).
func best[T any](cmpFunc func(a, b T) int, beats func(res int) bool) Collector[T, *T, *T] {
	return Collector[T, *T, *T]{
		Supplier: func() *T {
			return nil
		},
		Accumulator: func(acc *T, in T) *T {
			if acc == nil || beats(cmpFunc(in, *acc)) {
				return &in
			}
			return acc
		},
		Finisher: identity[*T],
	}
}

func newCache[T comparable]() types.AggregationWithCache[T] {
	return types.AggregationWithCache[T]{
		Aggregation: make([]T, 0),
		Cache:       make(map[T]bool),
	}
}

func identity[T any](t T) T {
	return t
}

func zero[T any]() T {
	var z T
	return z
}

func validate(isNil bool, collectorName string) {
	if isNil {
		panic("collectors." + collectorName + ": the function must not be nil")
	}
}
