package configs

import (
	"github.com/n0rdy/fallible/logging"
	"github.com/n0rdy/fallible/metrics"
)

// PipelineConfig is a struct that contains the configuration for a pipeline.
// It is accepted by the source functions of the [pipeline] package, which create the initial stage.
//
// [PipelineConfig.Logger] is a logger that will be used by every stage of the pipeline.
// If it is passed as nil, then the [logging.NoOpsLogger] logger will be used that does nothing.
// It is possible to change the logger for each stage individually - see [StageConfig.Logger].
//
// [PipelineConfig.Metrics] is a metrics sink that will be used by every stage and terminal of the pipeline.
// If it is passed as nil, then the [metrics.NopPipelineMetrics] will be used that does nothing.
//
// [PipelineConfig.InitStageConfig] is a config for the init stage.
// See [StageConfig] for more details.
type PipelineConfig struct {
	Logger          logging.Logger
	Metrics         metrics.PipelineMetrics
	InitStageConfig *StageConfig
}
