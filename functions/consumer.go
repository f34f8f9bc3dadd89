package functions

import (
	"github.com/n0rdy/fallible/types"
)

// Consumer is a function that takes an input, performs a side effect and returns a failure of type E (the zero value on success).
// The fallible use-case for it is the [transform.Peek] stage and the [aggregate.ForEach] terminal.
type Consumer[I any, E types.Failure] func(I) E

// Accept runs the consumer.
func (c Consumer[I, E]) Accept(input I) E {
	return c(input)
}

// AndThen returns a consumer that runs c and then after with the same input.
// If c fails, after is never invoked.
func (c Consumer[I, E]) AndThen(after Consumer[I, E]) Consumer[I, E] {
	return func(input I) E {
		if err := c(input); types.Failed(err) {
			return err
		}
		return after(input)
	}
}

// FromConsumer converts a plain side-effect function into a [Consumer] that can never fail.
func FromConsumer[I any](f func(I)) Consumer[I, types.Never] {
	return func(input I) types.Never {
		f(input)
		return nil
	}
}

// LiftConsumer widens the failure type of a [Consumer] that can never fail to E.
func LiftConsumer[E types.Failure, I any](c Consumer[I, types.Never]) Consumer[I, E] {
	return func(input I) E {
		c(input)
		var zero E
		return zero
	}
}

// BiConsumer is a [Consumer] of two inputs.
type BiConsumer[I1, I2 any, E types.Failure] func(I1, I2) E

// Accept runs the consumer.
func (c BiConsumer[I1, I2, E]) Accept(input1 I1, input2 I2) E {
	return c(input1, input2)
}

// AndThen returns a consumer that runs c and then after with the same inputs.
// If c fails, after is never invoked.
func (c BiConsumer[I1, I2, E]) AndThen(after BiConsumer[I1, I2, E]) BiConsumer[I1, I2, E] {
	return func(input1 I1, input2 I2) E {
		if err := c(input1, input2); types.Failed(err) {
			return err
		}
		return after(input1, input2)
	}
}

// FromBiConsumer converts a plain two-argument side-effect function into a [BiConsumer] that can never fail.
func FromBiConsumer[I1, I2 any](f func(I1, I2)) BiConsumer[I1, I2, types.Never] {
	return func(input1 I1, input2 I2) types.Never {
		f(input1, input2)
		return nil
	}
}
