// Package pipeline provides the source functions, which create the initial stage of a pipeline.
//
// Every source function takes the failure type of the pipeline as its first type parameter,
// so that the element type can be inferred from the arguments:
//
//	ids := pipeline.FromSlice[*DBConnectionError]([]string{"1", "2", "3"})
//
// The source is not read until a terminal operation from the [aggregate] package runs.
package pipeline

import (
	"iter"
	"slices"

	"github.com/n0rdy/fallible/configs"
	"github.com/n0rdy/fallible/stages"
	"github.com/n0rdy/fallible/types"
)

// FromSlice creates a pipeline from a slice.
// The elements are read in the slice order. The slice is read again by each terminal run, so it must not be modified meanwhile.
func FromSlice[E types.Failure, T any](s []T, confs ...configs.PipelineConfig) stages.Stage[T, E] {
	return from[E](slices.Values(s), confs...)
}

// Of creates a pipeline from the provided values.
func Of[E types.Failure, T any](values ...T) stages.Stage[T, E] {
	return from[E](slices.Values(values))
}

// Empty creates a pipeline with no elements.
func Empty[E types.Failure, T any](confs ...configs.PipelineConfig) stages.Stage[T, E] {
	return from[E](func(yield func(T) bool) {}, confs...)
}

// FromSeq creates a pipeline from an iter.Seq.
// Whether the pipeline can be run more than once depends on the sequence.
func FromSeq[E types.Failure, T any](seq iter.Seq[T], confs ...configs.PipelineConfig) stages.Stage[T, E] {
	return from[E](seq, confs...)
}

// FromMap creates a pipeline from a map.
// The elements are the key-value pairs in the map iteration order, which is not specified.
func FromMap[E types.Failure, K comparable, V any](m map[K]V, confs ...configs.PipelineConfig) stages.Stage[types.Tuple[K, V], E] {
	return from[E](func(yield func(types.Tuple[K, V]) bool) {
		for k, v := range m {
			if !yield(types.Tuple[K, V]{First: k, Second: v}) {
				return
			}
		}
	}, confs...)
}

// FromChannel creates a pipeline from a channel.
// The terminal run keeps reading from the channel until it is closed, a stage fails, or the pipeline is short-circuited (e.g. by a limit stage).
// Since it's an external channel, make sure to close it once it is not needed anymore, as otherwise the terminal operation won't return.
//
// The elements from the channel are consumed by the run that reads them, so such a pipeline is single-pass:
// a second run only sees the elements that were sent after the first one.
func FromChannel[E types.Failure, T any](ch <-chan T, confs ...configs.PipelineConfig) stages.Stage[T, E] {
	return from[E](func(yield func(T) bool) {
		for e := range ch {
			if !yield(e) {
				return
			}
		}
	}, confs...)
}

// from creates the init stage from a sequence.
//
// The [from] function accepts pipeline configs as optional parameters. Only the first config is used, the rest are ignored.
// The configs are used to configure the pipeline:
//
// Use [configs.PipelineConfig.Logger] to set the logger for the pipeline.
//
// Use [configs.PipelineConfig.Metrics] to set the metrics sink for the pipeline.
//
// The [configs.PipelineConfig.InitStageConfig] config can be used to configure the initial stage.
// See [configs.StageConfig] for more details.
func from[E types.Failure, T any](seq iter.Seq[T], confs ...configs.PipelineConfig) stages.Stage[T, E] {
	info := initStageInfo(confs...)
	info.Logger().Debug(info.Prefix() + "initiated")
	return stages.NewInitStage[T, E](seq, info)
}

func initStageInfo(confs ...configs.PipelineConfig) stages.Info {
	if len(confs) == 0 {
		return stages.NewInfo(stages.InitStageId, nil, nil)
	}

	conf := confs[0]
	id := int64(stages.InitStageId)
	logger := conf.Logger

	initStageConf := conf.InitStageConfig
	if initStageConf != nil {
		if initStageConf.CustomId != 0 {
			id = initStageConf.CustomId
		}
		if initStageConf.Logger != nil {
			// stage configs overrides pipeline configs for logger
			logger = initStageConf.Logger
		}
	}
	return stages.NewInfo(id, logger, conf.Metrics)
}
