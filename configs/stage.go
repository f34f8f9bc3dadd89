package configs

import (
	"github.com/n0rdy/fallible/logging"
)

// StageConfig is a struct that holds the configuration for a stage or a terminal operation.
//
// [StageConfig.CustomId] is a custom ID for the stage.
// If it is passed as 0, then the stage will be assigned an ID automatically.
// Auto-generated IDs are calculated as follows: 1 + the ID of the previous stage.
// The initial stage (the one that is created by the source function) has an ID of 1.
// It is recommended to either rely on the auto-generated IDs or to provide a custom ID for each stage, otherwise the IDs might be messed up due to the (1 + the ID of the previous stage) logic mentioned above.
//
// [StageConfig.Logger] is a logger that will be used by the stage.
// If it is passed as nil, the logger of the previous stage is used.
// This config option can be used to change the logger for each stage that comes from the [PipelineConfig.Logger] option (if provided).
// Please, note that the stages derived from this one inherit this logger.
type StageConfig struct {
	CustomId int64
	Logger   logging.Logger
}
