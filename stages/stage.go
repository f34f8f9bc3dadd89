package stages

import (
	"iter"
	"strconv"

	"github.com/n0rdy/fallible/configs"
	"github.com/n0rdy/fallible/logging"
	"github.com/n0rdy/fallible/metrics"
	"github.com/n0rdy/fallible/types"
)

const (
	InitStageId = 1
)

// PushFunc drives the elements of a stage into yield, one at a time and in the source order.
// It stops as soon as yield returns false or one of the stages fails, and returns that failure (the zero value otherwise).
// A PushFunc never returns a failure after yield has returned false.
type PushFunc[T any, E types.Failure] func(yield func(T) bool) E

// Info holds the stage attributes that are not related to the element type: the stage id, the logger and the metrics sink.
// It is shared by the stages and the terminal operations.
type Info struct {
	Id      int64
	logger  logging.Logger
	metrics metrics.PipelineMetrics
}

// NewInfo creates the Info for a stage with the provided id.
// Nil logger and metrics are replaced with the no-op implementations.
func NewInfo(id int64, logger logging.Logger, m metrics.PipelineMetrics) Info {
	if logger == nil {
		logger = logging.NewNoOpsLogger()
	}
	if m == nil {
		m = metrics.NopPipelineMetrics()
	}
	return Info{
		Id:      id,
		logger:  logger,
		metrics: m,
	}
}

// NextInfo creates the Info for the stage or terminal that follows prev.
// The id is 1 + the id of prev unless [configs.StageConfig.CustomId] is provided,
// and the logger is inherited from prev unless [configs.StageConfig.Logger] is provided.
// Only the first stage config is used.
func NextInfo(prev Info, confs ...configs.StageConfig) Info {
	next := NewInfo(prev.Id+1, prev.logger, prev.metrics)
	if len(confs) == 0 {
		return next
	}

	conf := confs[0]
	if conf.CustomId != 0 {
		next.Id = conf.CustomId
	}
	if conf.Logger != nil {
		// stage configs overrides pipeline configs for logger
		next.logger = conf.Logger
	}
	return next
}

// Logger returns the logger of the stage, never nil.
func (i Info) Logger() logging.Logger {
	if i.logger == nil {
		return logging.NewNoOpsLogger()
	}
	return i.logger
}

// Metrics returns the metrics sink of the stage, never nil.
func (i Info) Metrics() metrics.PipelineMetrics {
	if i.metrics == nil {
		return metrics.NopPipelineMetrics()
	}
	return i.metrics
}

// Prefix returns the log prefix of the stage, e.g. "stage 3: ".
func (i Info) Prefix() string {
	return "stage " + strconv.FormatInt(i.Id, 10) + ": "
}

// ElementRead reports that an element entered the stage.
func (i Info) ElementRead() {
	i.Metrics().ElementRead(i.Id)
}

// ElementDropped reports that the stage did not pass an element downstream.
func (i Info) ElementDropped() {
	i.Metrics().ElementDropped(i.Id)
}

// ReportFailure reports that the stage function returned a failure.
// The failure itself is not inspected: its Error method belongs to the caller and is never called here.
func (i Info) ReportFailure() {
	i.Metrics().StageFailure(i.Id)
	i.Logger().Debug(i.Prefix() + "failure returned")
}

// Stage is a struct that represents a lazily evaluated stage of a pipeline: a source plus the ordered chain of the recorded stages.
// It is created either by a source function of the [pipeline] package (the initial stage only) via the [NewInitStage] function,
// or by another stage via the [FromStage] function (see the [transform] package).
//
// Creating a stage never reads an element.
// The elements are pulled through the whole chain one at a time by a terminal operation from the [aggregate] package:
// each element passes every stage before the next one is read from the source.
// The first failure stops the run, and no element after the failing one is read.
//
// A Stage is an immutable value: deriving a new stage doesn't change the previous one,
// so the same prefix of a pipeline can be shared by several derived pipelines and run several times,
// as long as the source itself can be iterated more than once.
//
// The stage exposes:
//
// the [Stage.Run] function, which drives the elements into a callback.
// It is intended for the stage and terminal implementations.
// If you need to get the result of the pipeline, use the functions from the [aggregate] package instead;
//
// the [Stage.Iter] function, which bridges the stage to a range-over-func loop;
//
// the embedded [Info] with the [Info.Id] field, which is the id of the stage.
// It is used to identify the stage in the logs and metrics.
type Stage[T any, E types.Failure] struct {
	Info
	push PushFunc[T, E]
}

// NewInitStage is a function that creates the initial stage from the source sequence.
func NewInitStage[T any, E types.Failure](source iter.Seq[T], info Info) Stage[T, E] {
	return Stage[T, E]{
		Info: info,
		push: func(yield func(T) bool) E {
			var zero E
			for e := range source {
				info.ElementRead()
				if !yield(e) {
					break
				}
			}
			return zero
		},
	}
}

// FromStage is a function that creates a new stage based on the previous stage.
// The build function receives the [Info] of the new stage and returns its [PushFunc], which normally calls [Stage.Run] of prev.
// See [NextInfo] for how the stage configs are applied.
func FromStage[In, Out any, E types.Failure](prev Stage[In, E], build func(info Info) PushFunc[Out, E], confs ...configs.StageConfig) Stage[Out, E] {
	info := NextInfo(prev.Info, confs...)
	return Stage[Out, E]{
		Info: info,
		push: build(info),
	}
}

// Run drives the elements of the stage into yield and returns the first failure, if any.
// The run stops when yield returns false, in which case the zero value of E is returned.
// The zero Stage has no elements.
func (s Stage[T, E]) Run(yield func(T) bool) E {
	if s.push == nil {
		var zero E
		return zero
	}
	return s.push(yield)
}

// Iter returns the stage as an iter.Seq for a range-over-func loop together with a function that returns the failure of the last iteration.
//
//	seq, failure := stage.Iter()
//	for item := range seq {
//		...
//	}
//	if err := failure(); types.Failed(err) {
//		...
//	}
//
// The iteration stops at the first failure. Breaking out of the loop early is not a failure.
func (s Stage[T, E]) Iter() (iter.Seq[T], func() E) {
	var failure E
	seq := func(yield func(T) bool) {
		failure = s.Run(yield)
	}
	return seq, func() E {
		return failure
	}
}
