// Package metrics provides the metrics interface of the pipelines, which allows pluggable
// instrumentation backends without coupling the stages to any specific implementation.
//
// The default implementation does nothing, see [NopPipelineMetrics].
// The Prometheus implementation lives in the [prometheus] subpackage.
package metrics

import (
	"github.com/n0rdy/fallible/types/statuses"
)

// Timer measures the duration of an operation. Call ObserveDuration when
// the operation completes to record the elapsed time.
type Timer interface {
	// ObserveDuration records the elapsed time since the timer was created.
	ObserveDuration()
}

// PipelineMetrics defines the metrics reported by the stages and terminals.
// Implementations should be thread-safe, as the same stage might be run by several terminals concurrently.
type PipelineMetrics interface {
	// Stages
	ElementRead(stageId int64)
	ElementDropped(stageId int64)
	StageFailure(stageId int64)

	// Terminals
	TerminalDuration(terminal string) Timer
	// TerminalStatus is reported with [statuses.Running] when a run starts,
	// and with [statuses.Done] or [statuses.Failed] when it ends.
	TerminalStatus(terminal string, status statuses.Status)
}

type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

// NopTimer returns a no-op Timer.
func NopTimer() Timer { return nopTimer{} }

// nopPipelineMetrics is a no-op implementation of PipelineMetrics.
type nopPipelineMetrics struct{}

func (nopPipelineMetrics) ElementRead(int64)    {}
func (nopPipelineMetrics) ElementDropped(int64) {}
func (nopPipelineMetrics) StageFailure(int64)   {}

func (nopPipelineMetrics) TerminalDuration(string) Timer          { return nopTimer{} }
func (nopPipelineMetrics) TerminalStatus(string, statuses.Status) {}

// NopPipelineMetrics returns a no-op PipelineMetrics implementation.
func NopPipelineMetrics() PipelineMetrics { return nopPipelineMetrics{} }
