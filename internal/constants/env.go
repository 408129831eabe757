package constants

// Environment variables that override config file values
const (
	EnvDataDir    = "UNDERWRITE_DATA_DIR"
	EnvOutputDir  = "UNDERWRITE_OUTPUT_DIR"
	EnvOutputFile = "UNDERWRITE_OUTPUT_FILE"
	EnvBatches    = "UNDERWRITE_BATCHES"
	EnvBatchSize  = "UNDERWRITE_BATCH_SIZE"
	EnvSeed       = "UNDERWRITE_SEED"
	EnvLogLevel   = "UNDERWRITE_LOG_LEVEL"
)
