package metrics

import (
	"testing"

	"github.com/n0rdy/fallible/types/statuses"
)

func TestNopPipelineMetrics(t *testing.T) {
	m := NopPipelineMetrics()

	m.ElementRead(1)
	m.ElementDropped(2)
	m.StageFailure(3)
	m.TerminalDuration("collect").ObserveDuration()
	m.TerminalStatus("collect", statuses.Done)

	NopTimer().ObserveDuration()
}
