package aggregate

import (
	"github.com/google/uuid"

	"github.com/n0rdy/fallible/configs"
	"github.com/n0rdy/fallible/functions"
	"github.com/n0rdy/fallible/stages"
	"github.com/n0rdy/fallible/stages/aggregate/collectors"
	"github.com/n0rdy/fallible/types"
	"github.com/n0rdy/fallible/types/statuses"
)

// Collect is a terminal function that runs the pipeline and aggregates the surviving elements with the collector.
// The elements are passed through all the stages one by one, in the source order, and fed to the collector in that order.
//
// The run stops at the first failure of any stage: no element after the failing one is read from the source,
// the collector is not finished, and the zero value of R is returned together with the failure,
// which is exactly the value the failing stage function returned.
// Otherwise, the collector result and the zero value of E are returned.
//
// This is a final stage function, which means that it leads to the end of the pipeline.
// If you need to set up the pipeline, use functions from the [pipeline] package.
// If you need to make more transformations, use functions from the [transform] package instead.
//
// See the [collectors] package for the available aggregation strategies.
// If you need to sum numbers, use [Sum] instead.
func Collect[T, A, R any, E types.Failure](prevStage stages.Stage[T, E], collector collectors.Collector[T, A, R], confs ...configs.StageConfig) (R, E) {
	validate(collector.Supplier == nil || collector.Accumulator == nil || collector.Finisher == nil, "Collect")

	return aggregate(
		prevStage,
		"collect",
		collector.Supplier,
		func(aggrRes A, in T) (A, E) {
			var zero E
			return collector.Accumulator(aggrRes, in), zero
		},
		collector.Finisher,
		confs...,
	)
}

// Sum is a terminal function that runs the pipeline and sums the surviving elements.
// Any integer or float type is supported. An empty run results in 0.
//
// The run stops at the first failure of any stage, in which case 0 is returned together with the failure.
//
// This is a final stage function, which means that it leads to the end of the pipeline.
// If you need to set up the pipeline, use functions from the [pipeline] package.
// If you need to make more transformations, use functions from the [transform] package instead.
//
// If you need to sum complex numbers, use [SumComplexType] instead.
// If you need to sum numbers of a custom type, use [Collect] with the collectors.Reducing instead.
func Sum[N types.Number, E types.Failure](prevStage stages.Stage[N, E], confs ...configs.StageConfig) (N, E) {
	return aggregate(
		prevStage,
		"sum",
		zeroOf[N],
		func(aggrRes N, in N) (N, E) {
			var zero E
			return aggrRes + in, zero
		},
		identity[N],
		confs...,
	)
}

// SumComplexType is a terminal function that runs the pipeline and sums the surviving complex numbers.
// The run stops at the first failure of any stage, in which case 0 is returned together with the failure.
//
// If you need to sum simple numbers, use [Sum] instead.
func SumComplexType[N types.ComplexNumber, E types.Failure](prevStage stages.Stage[N, E], confs ...configs.StageConfig) (N, E) {
	return aggregate(
		prevStage,
		"sumComplexType",
		zeroOf[N],
		func(aggrRes N, in N) (N, E) {
			var zero E
			return aggrRes + in, zero
		},
		identity[N],
		confs...,
	)
}

// ForEach is a terminal function that runs the pipeline and calls the action for each surviving element.
// This function is useful when you need to process the elements, but you don't need to return any value.
//
// The failure of the action is treated like the one of a stage:
// the run stops, and the failure is returned as is.
//
// This is a final stage function, which means that it leads to the end of the pipeline.
// If you need to set up the pipeline, use functions from the [pipeline] package.
// If you need to make more transformations, use functions from the [transform] package instead.
func ForEach[T any, E types.Failure](prevStage stages.Stage[T, E], action functions.Consumer[T, E], confs ...configs.StageConfig) E {
	validate(action == nil, "ForEach")

	_, err := aggregate(
		prevStage,
		"forEach",
		zeroOf[types.Void],
		func(aggrRes types.Void, in T) (types.Void, E) {
			return aggrRes, action(in)
		},
		identity[types.Void],
		confs...,
	)
	return err
}

// aggregate is a generic terminal function that runs the pipeline and aggregates the elements using the given functions.
// initFunc creates the aggregation, aggFunc folds each element into it (and might fail), resFunc converts it into the result.
// The first failure stops the run, in which case resFunc is not called.
func aggregate[In, Aggr, Res any, E types.Failure](
	prevStage stages.Stage[In, E],
	terminal string,
	initFunc func() Aggr,
	aggFunc func(aggrRes Aggr, in In) (Aggr, E),
	resFunc func(aggrRes Aggr) Res,
	confs ...configs.StageConfig,
) (Res, E) {
	info := stages.NextInfo(prevStage.Info, confs...)
	logger := info.Logger()
	// the same pipeline might be run several times, the run id tells the runs apart in the logs
	stageIdAsString := info.Prefix() + terminal + " run " + uuid.NewString() + ": "

	inputReceived := stageIdAsString + "input received"

	logger.Debug(stageIdAsString + "initiating...")
	info.Metrics().TerminalStatus(terminal, statuses.Running)

	timer := info.Metrics().TerminalDuration(terminal)
	defer timer.ObserveDuration()

	aggrRes := initFunc()

	var failure E
	err := prevStage.Run(func(in In) bool {
		info.ElementRead()
		logger.Trace(inputReceived)

		next, err := aggFunc(aggrRes, in)
		if types.Failed(err) {
			info.ReportFailure()
			failure = err
			return false
		}
		aggrRes = next
		return true
	})
	if !types.Failed(err) {
		err = failure
	}

	if types.Failed(err) {
		// the failure is passed as is, only the loggers that write it call its Error method
		logger.Warn(stageIdAsString+"failed", err)
		info.Metrics().TerminalStatus(terminal, statuses.Failed)

		var zero Res
		return zero, err
	}

	res := resFunc(aggrRes)
	info.Metrics().TerminalStatus(terminal, statuses.Done)

	logger.Info(stageIdAsString + "finished")

	return res, err
}

func validate(isNil bool, terminalName string) {
	if isNil {
		panic("aggregate." + terminalName + ": the function must not be nil")
	}
}

func identity[T any](t T) T {
	return t
}

func zeroOf[T any]() T {
	var zero T
	return zero
}
