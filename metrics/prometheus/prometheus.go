// Package prometheus provides the Prometheus implementation of [metrics.PipelineMetrics].
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/n0rdy/fallible/metrics"
	"github.com/n0rdy/fallible/types/statuses"
)

// Default histogram buckets for terminal durations (in seconds).
var defaultBuckets = []float64{
	.0001, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10,
}

// timer wraps a Prometheus histogram to implement the Timer interface.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// pipelineMetrics implements metrics.PipelineMetrics using Prometheus.
type pipelineMetrics struct {
	elementsRead    *prometheus.CounterVec
	elementsDropped *prometheus.CounterVec
	stageFailures   *prometheus.CounterVec

	terminalDuration *prometheus.HistogramVec
	terminalRuns     *prometheus.CounterVec
}

// NewPipelineMetrics creates the Prometheus collectors and registers them with reg.
// It panics if the registration fails, e.g. if it is called twice with the same registerer.
func NewPipelineMetrics(reg prometheus.Registerer) metrics.PipelineMetrics {
	m := &pipelineMetrics{
		elementsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fallible_stage_elements_read_total",
			Help: "Total number of elements that entered a stage",
		}, []string{"stage"}),

		elementsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fallible_stage_elements_dropped_total",
			Help: "Total number of elements a stage did not pass downstream",
		}, []string{"stage"}),

		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fallible_stage_failures_total",
			Help: "Total number of failures returned by a stage",
		}, []string{"stage"}),

		terminalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fallible_terminal_duration_seconds",
			Help:    "Terminal operation latency in seconds",
			Buckets: defaultBuckets,
		}, []string{"terminal"}),

		terminalRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fallible_terminal_runs_total",
			Help: "Total number of terminal runs by status: started runs are counted as running",
		}, []string{"terminal", "status"}),
	}

	reg.MustRegister(
		m.elementsRead,
		m.elementsDropped,
		m.stageFailures,
		m.terminalDuration,
		m.terminalRuns,
	)
	return m
}

func (m *pipelineMetrics) ElementRead(stageId int64) {
	m.elementsRead.WithLabelValues(stageLabel(stageId)).Inc()
}

func (m *pipelineMetrics) ElementDropped(stageId int64) {
	m.elementsDropped.WithLabelValues(stageLabel(stageId)).Inc()
}

func (m *pipelineMetrics) StageFailure(stageId int64) {
	m.stageFailures.WithLabelValues(stageLabel(stageId)).Inc()
}

func (m *pipelineMetrics) TerminalDuration(terminal string) metrics.Timer {
	return newTimer(m.terminalDuration.WithLabelValues(terminal))
}

func (m *pipelineMetrics) TerminalStatus(terminal string, status statuses.Status) {
	m.terminalRuns.WithLabelValues(terminal, status.String()).Inc()
}

func stageLabel(stageId int64) string {
	return strconv.FormatInt(stageId, 10)
}
