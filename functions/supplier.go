package functions

import (
	"github.com/n0rdy/fallible/types"
)

// Supplier is a function that takes no input and returns either a value or a failure of type E.
type Supplier[O any, E types.Failure] func() (O, E)

// Get runs the supplier.
func (s Supplier[O, E]) Get() (O, E) {
	return s()
}

// FromSupplier converts a plain value-producing function into a [Supplier] that can never fail.
func FromSupplier[O any](f func() O) Supplier[O, types.Never] {
	return func() (O, types.Never) {
		return f(), nil
	}
}

// Constant returns a [Supplier] that always returns value.
// E comes first, so the value type is inferred: functions.Constant[*WidgetError](42).
func Constant[E types.Failure, O any](value O) Supplier[O, E] {
	return func() (O, E) {
		var zero E
		return value, zero
	}
}

// Failing returns a [Supplier] that always fails with failure.
func Failing[O any, E types.Failure](failure E) Supplier[O, E] {
	return func() (O, E) {
		var zero O
		return zero, failure
	}
}

// Runnable is a piece of code, usually with a side effect, that returns a failure of type E (the zero value on success).
type Runnable[E types.Failure] func() E

// Run runs the runnable.
func (r Runnable[E]) Run() E {
	return r()
}

// FromRunnable converts a plain function into a [Runnable] that can never fail.
func FromRunnable(f func()) Runnable[types.Never] {
	return func() types.Never {
		f()
		return nil
	}
}
