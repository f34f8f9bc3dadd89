package transform

import (
	"github.com/n0rdy/fallible/configs"
	"github.com/n0rdy/fallible/functions"
	"github.com/n0rdy/fallible/stages"
	"github.com/n0rdy/fallible/types"
)

// Filter keeps only the elements for which the predicate returns true.
// It returns a new stage that can be used to chain other stages.
// The predicate is not called until a terminal operation runs.
//
// If the predicate fails for an element, the terminal operation stops at that element and returns the failure:
// the elements after it are never read from the source.
// Dropped elements don't reach the next stages at all, so their functions are never called for them.
//
// This is an intermediate stage function, which means that it can be used only in the middle of the pipeline.
// If you need to set up the pipeline, use functions from the [pipeline] package.
// If you need to get the result of the pipeline, use functions from the [aggregate] package.
//
// Among other arguments, the function accepts optional stage configs.
// Only the first stage config is used. See [configs.StageConfig] for more details.
func Filter[T any, E types.Failure](prevStage stages.Stage[T, E], predicate functions.Predicate[T, E], confs ...configs.StageConfig) stages.Stage[T, E] {
	validate(predicate == nil, "Filter")

	return transform(prevStage, "filter", func(info stages.Info, in T, yield func(T) bool) (bool, E) {
		ok, err := predicate(in)
		if types.Failed(err) {
			return false, err
		}
		if !ok {
			info.ElementDropped()
			return true, err
		}
		return yield(in), err
	}, confs...)
}

// Map transforms each element using the mapFunc.
// It returns a new stage that can be used to chain other stages.
// The function is not called until a terminal operation runs.
//
// If the mapFunc fails for an element, the terminal operation stops at that element and returns the failure:
// the elements after it are never read from the source.
//
// This is an intermediate stage function, which means that it can be used only in the middle of the pipeline.
// If you need to set up the pipeline, use functions from the [pipeline] package.
// If you need to get the result of the pipeline, use functions from the [aggregate] package.
//
// Among other arguments, the function accepts optional stage configs.
// Only the first stage config is used. See [configs.StageConfig] for more details.
//
// If your function can't fail, convert it with [functions.From] and [functions.LiftFunction].
// If you need a numeric stage to be summed, use [MapToNumber] instead.
func Map[In, Out any, E types.Failure](prevStage stages.Stage[In, E], mapFunc functions.Function[In, Out, E], confs ...configs.StageConfig) stages.Stage[Out, E] {
	validate(mapFunc == nil, "Map")

	return transform(prevStage, "map", func(_ stages.Info, in In, yield func(Out) bool) (bool, E) {
		out, err := mapFunc(in)
		if types.Failed(err) {
			return false, err
		}
		return yield(out), err
	}, confs...)
}

// MapToNumber is the [Map] that produces a numeric stage, which can be passed to the aggregate.Sum terminal.
// The behavior is exactly the one of [Map].
func MapToNumber[In any, N types.Number, E types.Failure](prevStage stages.Stage[In, E], mapFunc functions.Function[In, N, E], confs ...configs.StageConfig) stages.Stage[N, E] {
	validate(mapFunc == nil, "MapToNumber")

	return Map(prevStage, mapFunc, confs...)
}

// FlatMap transforms each element into a slice using the flatMapFunc and passes the slice elements downstream one by one, in order.
// It returns a new stage that can be used to chain other stages.
//
// If the flatMapFunc fails for an element, the terminal operation stops at that element and returns the failure.
// If the next stages stop the run in the middle of a slice, the rest of the slice is skipped and no more elements are read from the source.
//
// Among other arguments, the function accepts optional stage configs.
// Only the first stage config is used. See [configs.StageConfig] for more details.
func FlatMap[In, Out any, E types.Failure](prevStage stages.Stage[In, E], flatMapFunc functions.Function[In, []Out, E], confs ...configs.StageConfig) stages.Stage[Out, E] {
	validate(flatMapFunc == nil, "FlatMap")

	return transform(prevStage, "flatMap", func(info stages.Info, in In, yield func(Out) bool) (bool, E) {
		outs, err := flatMapFunc(in)
		if types.Failed(err) {
			return false, err
		}
		if len(outs) == 0 {
			info.ElementDropped()
		}
		for _, out := range outs {
			if !yield(out) {
				return false, err
			}
		}
		return true, err
	}, confs...)
}

// Peek calls the action for each element and passes the element downstream unchanged.
// It is handy for logging or counting the elements that reach a certain point of the pipeline.
//
// If the action fails for an element, the terminal operation stops at that element and returns the failure.
//
// Among other arguments, the function accepts optional stage configs.
// Only the first stage config is used. See [configs.StageConfig] for more details.
func Peek[T any, E types.Failure](prevStage stages.Stage[T, E], action functions.Consumer[T, E], confs ...configs.StageConfig) stages.Stage[T, E] {
	validate(action == nil, "Peek")

	return transform(prevStage, "peek", func(_ stages.Info, in T, yield func(T) bool) (bool, E) {
		if err := action(in); types.Failed(err) {
			return false, err
		}
		return yield(in), *new(E)
	}, confs...)
}

// Limit passes at most n elements downstream.
// Once the n-th element is passed, no more elements are read from the source, which makes it possible to run pipelines over endless sources.
// If n is 0 or less, no element is read at all.
//
// Among other arguments, the function accepts optional stage configs.
// Only the first stage config is used. See [configs.StageConfig] for more details.
func Limit[T any, E types.Failure](prevStage stages.Stage[T, E], n int, confs ...configs.StageConfig) stages.Stage[T, E] {
	return stages.FromStage(prevStage, func(info stages.Info) stages.PushFunc[T, E] {
		info.Logger().Trace(info.Prefix() + "limit stage recorded")

		return func(yield func(T) bool) E {
			if n <= 0 {
				var zero E
				return zero
			}

			// counted per run, as the stage can be run more than once
			passed := 0
			return prevStage.Run(func(in T) bool {
				info.ElementRead()
				passed++
				if !yield(in) {
					return false
				}
				return passed < n
			})
		}
	}, confs...)
}

// transform creates the next stage, which runs stepFunc for each element of prevStage.
// stepFunc returns whether the run should go on, and the failure for the element, if any.
// The first failure stops reading prevStage and is returned by the new stage as is.
func transform[In, Out any, E types.Failure](prevStage stages.Stage[In, E], name string, stepFunc func(info stages.Info, in In, yield func(Out) bool) (bool, E), confs ...configs.StageConfig) stages.Stage[Out, E] {
	return stages.FromStage(prevStage, func(info stages.Info) stages.PushFunc[Out, E] {
		info.Logger().Trace(info.Prefix() + name + " stage recorded")

		return func(yield func(Out) bool) E {
			var failure E
			err := prevStage.Run(func(in In) bool {
				info.ElementRead()

				goOn, err := stepFunc(info, in, yield)
				if types.Failed(err) {
					info.ReportFailure()
					failure = err
					return false
				}
				return goOn
			})
			if types.Failed(err) {
				// the failure of an earlier stage: this stage never failed, as it stops the run on its own failure
				return err
			}
			return failure
		}
	}, confs...)
}

func validate(isNil bool, stageName string) {
	if isNil {
		panic("transform." + stageName + ": the stage function must not be nil")
	}
}
