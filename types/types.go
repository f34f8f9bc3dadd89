package types

import (
	"golang.org/x/exp/constraints"
)

// Tuple is a pair of values, used by the map sources and the map collectors.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Number is a type constraint for the numbers that can be summed by the aggregate.Sum terminal.
type Number interface {
	constraints.Integer | constraints.Float
}

// ComplexNumber is a type constraint for the numbers that can be summed by the aggregate.SumComplexType terminal.
type ComplexNumber interface {
	constraints.Complex
}

// Void is a placeholder result for the aggregations that produce nothing but side effects.
type Void struct{}

type AggregationWithCounter[T any] struct {
	Aggregation T
	Counter     int64
}

type AggregationWithCache[T comparable] struct {
	Aggregation []T
	Cache       map[T]bool
}
