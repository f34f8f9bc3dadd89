package stages

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n0rdy/fallible/configs"
	"github.com/n0rdy/fallible/logging"
	"github.com/n0rdy/fallible/metrics"
	"github.com/n0rdy/fallible/types/loglevels"
	"github.com/n0rdy/fallible/types/statuses"
)

type recordingMetrics struct {
	read     map[int64]int
	failures map[int64]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		read:     make(map[int64]int),
		failures: make(map[int64]int),
	}
}

func (m *recordingMetrics) ElementRead(stageId int64)  { m.read[stageId]++ }
func (m *recordingMetrics) ElementDropped(int64)       {}
func (m *recordingMetrics) StageFailure(stageId int64) { m.failures[stageId]++ }

func (m *recordingMetrics) TerminalDuration(string) metrics.Timer  { return metrics.NopTimer() }
func (m *recordingMetrics) TerminalStatus(string, statuses.Status) {}

func TestNextInfo_Ids(t *testing.T) {
	initInfo := NewInfo(InitStageId, nil, nil)

	next := NextInfo(initInfo)
	assert.Equal(t, int64(2), next.Id)
	assert.Equal(t, "stage 2: ", next.Prefix())

	custom := NextInfo(next, configs.StageConfig{CustomId: 42})
	assert.Equal(t, int64(42), custom.Id)

	afterCustom := NextInfo(custom)
	assert.Equal(t, int64(43), afterCustom.Id)
}

func TestNextInfo_LoggerOverride(t *testing.T) {
	ch := make(chan string, 10)
	pipelineLogger := logging.NewChannelLogger(ch, loglevels.DEBUG)
	stageLogger := logging.NewNoOpsLogger()

	initInfo := NewInfo(InitStageId, pipelineLogger, nil)
	assert.Same(t, pipelineLogger, NextInfo(initInfo).Logger())

	overridden := NextInfo(initInfo, configs.StageConfig{Logger: stageLogger})
	assert.Equal(t, stageLogger, overridden.Logger())
	assert.Equal(t, stageLogger, NextInfo(overridden).Logger())
}

func TestInfo_ZeroValueDefaults(t *testing.T) {
	var info Info

	assert.NotNil(t, info.Logger())
	assert.NotNil(t, info.Metrics())
	info.ElementRead()
	info.ReportFailure()
}

func TestInfo_ReportFailure(t *testing.T) {
	ch := make(chan string, 10)
	m := newRecordingMetrics()
	info := NewInfo(3, logging.NewChannelLogger(ch, loglevels.DEBUG), m)

	info.ReportFailure()

	assert.Equal(t, 1, m.failures[3])
	require.Len(t, ch, 1)
	assert.Contains(t, <-ch, "stage 3: failure returned")
}

func TestInitStage_RunsTheSourceAgain(t *testing.T) {
	m := newRecordingMetrics()
	stage := NewInitStage[int, error](slices.Values([]int{1, 2, 3}), NewInfo(InitStageId, nil, m))

	var first, second []int
	assert.NoError(t, stage.Run(func(i int) bool {
		first = append(first, i)
		return true
	}))
	assert.NoError(t, stage.Run(func(i int) bool {
		second = append(second, i)
		return true
	}))

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 6, m.read[InitStageId])
}

func TestInitStage_StopsReadingWhenYieldReturnsFalse(t *testing.T) {
	read := 0
	source := func(yield func(int) bool) {
		for i := 1; i <= 10; i++ {
			read++
			if !yield(i) {
				return
			}
		}
	}
	stage := NewInitStage[int, error](source, NewInfo(InitStageId, nil, nil))

	var got []int
	err := stage.Run(func(i int) bool {
		got = append(got, i)
		return i < 2
	})

	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, read)
}

func TestFromStage_FailureStopsTheRun(t *testing.T) {
	failure := errors.New("odd number")
	initStage := NewInitStage[int, error](slices.Values([]int{2, 4, 5, 6}), NewInfo(InitStageId, nil, nil))

	evenOnly := FromStage(initStage, func(info Info) PushFunc[int, error] {
		return func(yield func(int) bool) error {
			var stageErr error
			if err := initStage.Run(func(i int) bool {
				if i%2 != 0 {
					stageErr = failure
					return false
				}
				return yield(i)
			}); err != nil {
				return err
			}
			return stageErr
		}
	})
	assert.Equal(t, int64(2), evenOnly.Id)

	var got []int
	err := evenOnly.Run(func(i int) bool {
		got = append(got, i)
		return true
	})

	assert.Same(t, failure, err)
	assert.Equal(t, []int{2, 4}, got)
}

func TestZeroStage_HasNoElements(t *testing.T) {
	var stage Stage[int, error]

	calls := 0
	err := stage.Run(func(int) bool {
		calls++
		return true
	})

	assert.NoError(t, err)
	assert.Zero(t, calls)
}

func TestIter(t *testing.T) {
	initStage := NewInitStage[string, error](slices.Values([]string{"a", "b", "c"}), NewInfo(InitStageId, nil, nil))

	seq, failure := initStage.Iter()

	var got []string
	for s := range seq {
		got = append(got, s)
		if s == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, got)
	assert.NoError(t, failure())
}
